package telegram

import (
	"ashram-bot/internal/catalog"
	"ashram-bot/internal/constant"
)

// CategoryKeyboard lays out the whole catalog, catalog.ButtonsPerRow per row.
func CategoryKeyboard() Keyboard {
	labels := catalog.Labels()
	keyboard := make(Keyboard, 0, (len(labels)+catalog.ButtonsPerRow-1)/catalog.ButtonsPerRow)

	var row []Button
	for i, label := range labels {
		row = append(row, Button{Text: label, Data: catalog.CallbackData(i)})
		if len(row) == catalog.ButtonsPerRow {
			keyboard = append(keyboard, row)
			row = nil
		}
	}
	if len(row) > 0 {
		keyboard = append(keyboard, row)
	}
	return keyboard
}

func ReviewKeyboard() Keyboard {
	return Keyboard{
		{
			{Text: constant.MsgSubmitButton, Data: CallbackSubmit},
			{Text: constant.MsgRestartButton, Data: CallbackRestart},
		},
	}
}

package conversation

// EventKind identifies what the user did.
type EventKind int

const (
	EventText EventKind = iota
	EventStart
	EventLearn
	EventPhoto
	EventCategory
	EventSubmit
	EventRestart
)

func (k EventKind) String() string {
	switch k {
	case EventText:
		return "text"
	case EventStart:
		return "start"
	case EventLearn:
		return "learn"
	case EventPhoto:
		return "photo"
	case EventCategory:
		return "category"
	case EventSubmit:
		return "submit"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is an inbound user action already stripped of transport details.
type Event struct {
	Kind          EventKind
	Text          string
	Photo         Photo
	CategoryIndex int
}

func TextEvent(text string) Event {
	return Event{Kind: EventText, Text: text}
}

func PhotoEvent(photo Photo) Event {
	return Event{Kind: EventPhoto, Photo: photo}
}

func CategoryEvent(index int) Event {
	return Event{Kind: EventCategory, CategoryIndex: index}
}

// CommandEvent maps a bot command to its event. Commands the bot does not
// know travel on as plain text, the same way any other message does.
func CommandEvent(command, fullText string) Event {
	switch command {
	case "start":
		return Event{Kind: EventStart}
	case "learn":
		return Event{Kind: EventLearn}
	default:
		return TextEvent(fullText)
	}
}

func SubmitEvent() Event {
	return Event{Kind: EventSubmit}
}

func RestartEvent() Event {
	return Event{Kind: EventRestart}
}

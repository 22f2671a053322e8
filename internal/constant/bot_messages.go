package constant

import "fmt"

// Welcome is formatted for MarkdownV2; everything else uses legacy Markdown
// or plain text.
const MsgWelcome = "🪷 *Hari Om\\! Welcome to Gurunath Teachings Bot*\n\n" +
	"This bot has two purposes:\n\n" +
	"*📚 Learn from Gurunath's Teachings*\n" +
	"Ask any question about Kriya Yoga, consciousness, or Gurunath's wisdom\\.\n" +
	"→ Type /learn to start\n\n" +
	"*📸 Submit Ashram Projects*\n" +
	"Photo something that needs fixing at the ashram\\.\n" +
	"→ Send a photo to get started\n\n" +
	"🙏 *Yogiraj Siddhanath's blessings be with you\\.*"

const MsgLearn = "🪷 *Ask me about Gurunath's Teachings*\n\n" +
	"You can ask about:\n" +
	"• Kriya Yoga and its techniques\n" +
	"• Consciousness and awareness\n" +
	"• Science and spirituality\n" +
	"• Hamsa Yoga and the breath\n" +
	"• Any teaching of Yogiraj Siddhanath\n\n" +
	"Just type your question:"

const (
	MsgThinking          = "🪷 _Thinking..._"
	MsgNoAnswer          = "I cannot answer that right now. Please try again."
	MsgCategoryMenu      = "📸 Got your photo! Now select a category:"
	MsgInvalidCategory   = "That category is not on the list. Please pick one of the buttons above."
	MsgSendPhoto         = "📸 Send a photo of what needs to be fixed to get started."
	MsgRestarted         = "OK, starting over. Send a photo of what needs to be fixed."
	MsgNothingToSubmit   = "There is no project waiting to be submitted. Send a photo of what needs to be fixed to get started."
	MsgSubmittingToast   = "Submitting..."
	MsgSubmitButton      = "✅ Yes, submit"
	MsgRestartButton     = "✏️ Start over"
	MsgUnknownCostLabel  = "Unknown"
	MsgSubmissionPending = "⏳ This project is already being submitted."
)

const MsgPrice = "Got it.\n\n" +
	"What's your estimated cost in USD?\n\n" +
	"_Type a number (e.g. 500) or type \"unknown\" if you're not sure._"

const MsgSubmitted = "✅ *Submitted successfully!*\n\n" +
	"Your project is now live on cottoncandygod.com\n" +
	"Hamsas can now pledge support to fund this.\n\n" +
	"🙏 Hari Om!"

// MsgDescription expects an already escaped category label.
func MsgDescription(category string) string {
	return fmt.Sprintf("Category: *%s*\n\n", category) +
		"Now describe *specifically* what needs to be done:\n\n" +
		"_Example: \"The marble step at the main temple entrance is cracked and a tripping hazard. Needs to be replaced with matching marble.\"_"
}

// MsgReview expects escaped category and description and a formatted cost.
func MsgReview(category, description, cost string) string {
	return "📋 *Review your submission:*\n\n" +
		fmt.Sprintf("*Category:* %s\n", category) +
		fmt.Sprintf("*Description:* %s\n", description) +
		fmt.Sprintf("*Estimated cost:* %s\n\n", cost) +
		"Submit this to cottoncandygod.com?"
}

func MsgSubmitFailed(err error) string {
	return fmt.Sprintf("❌ Error saving: %s\n\nPlease try again.", err.Error())
}

func MsgAnswerFailed(err error) string {
	return fmt.Sprintf("❌ Could not get answer: %s", err.Error())
}

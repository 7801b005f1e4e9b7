package dashboard

// Element ids of the presentation surface
const (
	ElementTrigger        = "trigger"
	ElementInput          = "input"
	ElementStatus         = "status"
	ElementProgressEasy   = "progress-easy"
	ElementProgressMedium = "progress-medium"
	ElementProgressHard   = "progress-hard"
	ElementCards          = "cards"
)

// Style flags.  Positive and negative are mutually exclusive on the status element.
const (
	FlagPositive = "positive"
	FlagNegative = "negative"
	FlagDisabled = "disabled"
)

// Card is one summary card
type Card struct {
	Label string
	Value string
}

// Surface is everything the dashboard needs from whatever renders it
type Surface interface {
	Text(id string) string
	SetText(id string, text string)
	Flag(id string, flag string) bool
	SetFlag(id string, flag string, on bool)
	Percent(id string) float64
	SetPercent(id string, pct float64)
	Cards(id string) []Card
	SetCards(id string, cards []Card)
}

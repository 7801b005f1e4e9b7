package dashboard

// Board is an in-memory Surface.  The TUI renders from it and tests assert against it.
type Board struct {
	texts     map[string]string
	flags     map[string]map[string]bool
	percents  map[string]float64
	cards     map[string][]Card
	mutations map[string]int
}

func NewBoard() *Board {
	return &Board{
		texts:     make(map[string]string),
		flags:     make(map[string]map[string]bool),
		percents:  make(map[string]float64),
		cards:     make(map[string][]Card),
		mutations: make(map[string]int),
	}
}

func (b *Board) Text(id string) string {
	return b.texts[id]
}

func (b *Board) SetText(id string, text string) {
	b.texts[id] = text
	b.mutations[id]++
}

func (b *Board) Flag(id string, flag string) bool {
	return b.flags[id][flag]
}

func (b *Board) SetFlag(id string, flag string, on bool) {
	if b.flags[id] == nil {
		b.flags[id] = make(map[string]bool)
	}
	b.flags[id][flag] = on
	b.mutations[id]++
}

func (b *Board) Percent(id string) float64 {
	return b.percents[id]
}

func (b *Board) SetPercent(id string, pct float64) {
	b.percents[id] = pct
	b.mutations[id]++
}

// Cards returns a copy of the cards rendered into the container
func (b *Board) Cards(id string) []Card {
	return append([]Card(nil), b.cards[id]...)
}

// SetCards replaces the container's cards entirely
func (b *Board) SetCards(id string, cards []Card) {
	b.cards[id] = append([]Card(nil), cards...)
	b.mutations[id]++
}

// Mutations counts the writes made to an element since the board was created
func (b *Board) Mutations(id string) int {
	return b.mutations[id]
}

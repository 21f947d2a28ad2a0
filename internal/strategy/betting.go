package strategy

// BettingRule sizes the next bet from the round-by-round outcome history.
// Implementations are stateful within a session; the engine calls Reset at
// the start of each session so progressions never leak across samples.
type BettingRule interface {
	Name() string
	// Bet returns the next bet in units of the table minimum.
	Bet() float64
	Won()
	Lost()
	Reset()
}

// Flat always bets one unit.
type Flat struct{}

func (*Flat) Name() string { return "Flat" }
func (*Flat) Bet() float64 { return 1 }
func (*Flat) Won()         {}
func (*Flat) Lost()        {}
func (*Flat) Reset()       {}

// Martingale doubles the bet after every loss and resets to one unit on a
// win. The table limit caps the doubling; clamping happens at the table, not
// here, so the progression state stays honest about where it is.
type Martingale struct {
	stage int
}

func (*Martingale) Name() string { return "Martingale" }

func (m *Martingale) Bet() float64 {
	bet := 1.0
	for i := 0; i < m.stage; i++ {
		bet *= 2
	}
	return bet
}

func (m *Martingale) Won()   { m.stage = 0 }
func (m *Martingale) Lost()  { m.stage++ }
func (m *Martingale) Reset() { m.stage = 0 }

// oneThreeTwoSix is the 1-3-2-6 positive progression: advance through the
// sequence on wins, restart on a loss or after completing the cycle.
var oneThreeTwoSix = [4]float64{1, 3, 2, 6}

// OneThreeTwoSix implements the 1-3-2-6 betting progression.
type OneThreeTwoSix struct {
	stage int
}

func (*OneThreeTwoSix) Name() string { return "OneThreeTwoSix" }

func (o *OneThreeTwoSix) Bet() float64 { return oneThreeTwoSix[o.stage] }

func (o *OneThreeTwoSix) Won() {
	o.stage++
	if o.stage >= len(oneThreeTwoSix) {
		o.stage = 0
	}
}

func (o *OneThreeTwoSix) Lost()  { o.stage = 0 }
func (o *OneThreeTwoSix) Reset() { o.stage = 0 }

var bettingTable = map[string]func() BettingRule{
	"Flat":           func() BettingRule { return &Flat{} },
	"Martingale":     func() BettingRule { return &Martingale{} },
	"OneThreeTwoSix": func() BettingRule { return &OneThreeTwoSix{} },
}

// ResolveBetting returns a fresh betting rule for the given key.
func ResolveBetting(key string) (BettingRule, error) {
	return resolve(AxisBetting, bettingTable, key)
}

// BettingKeys lists the accepted betting rule keys, sorted.
func BettingKeys() []string { return keys(bettingTable) }

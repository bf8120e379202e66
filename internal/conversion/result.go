package conversion

// Result is the tuple a successful conversion produces. Front ends hand it to
// the history store; the engine never persists it.
type Result struct {
	Category  string  `json:"category"`
	FromValue float64 `json:"fromValue"`
	FromUnit  string  `json:"fromUnit"`
	ToValue   float64 `json:"toValue"`
	ToUnit    string  `json:"toUnit"`
}

// Recordable reports whether the result is worth keeping in history: a zero
// output is only kept when the input was zero too, so clamped non-finite
// input never lands in history.
func (r Result) Recordable() bool {
	return r.ToValue != 0 || r.FromValue == 0
}

package component

// WhiteFlash makes an entity render as full white while On. Enemies switch it
// from their damage flash timer.
type WhiteFlash struct {
	On bool
}

var WhiteFlashComponent = NewComponent[WhiteFlash]()

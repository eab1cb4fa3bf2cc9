package polar

// CurveView is the serializable form of one TWS row.
type CurveView struct {
	TWS   float64 `json:"tws" yaml:"tws"`
	Pairs []Pair  `json:"pairs" yaml:"pairs"`
}

// View is the serializable form of a table, used by the show command.
type View struct {
	Comments []string    `json:"comments,omitempty" yaml:"comments,omitempty"`
	Curves   []CurveView `json:"curves" yaml:"curves"`
}

// View returns a detached serializable snapshot of the table.
func (t *Table) View() View {
	c := t.Clone()
	v := View{Comments: c.comments, Curves: make([]CurveView, c.Len())}
	for i := range c.tws {
		v.Curves[i] = CurveView{TWS: c.tws[i], Pairs: c.curves[i]}
	}
	return v
}

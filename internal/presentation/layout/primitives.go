package layout

// Primitive is one drawable element inside a Group. The set of primitives is
// closed: Rect, Line and Text.
type Primitive interface {
	Accept(v Visitor) error
	Kind() string
}

// Visitor receives each primitive by its concrete type
type Visitor interface {
	VisitRect(r *Rect) error
	VisitLine(l *Line) error
	VisitText(t *Text) error
}

// Rect is a filled rectangle with optional rounded corners
type Rect struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	RX     float64 `json:"rx"`
	Class  string  `json:"class"`
}

func (r *Rect) Accept(v Visitor) error { return v.VisitRect(r) }
func (r *Rect) Kind() string           { return "rect" }

// Line is a straight stroke, optionally dashed
type Line struct {
	X1     float64 `json:"x1"`
	Y1     float64 `json:"y1"`
	X2     float64 `json:"x2"`
	Y2     float64 `json:"y2"`
	Class  string  `json:"class"`
	Dashed bool    `json:"dashed"`
}

func (l *Line) Accept(v Visitor) error { return v.VisitLine(l) }
func (l *Line) Kind() string           { return "line" }

// Text is a label anchored at its baseline start
type Text struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Content string  `json:"content"`
	Class   string  `json:"class"`
}

func (t *Text) Accept(v Visitor) error { return v.VisitText(t) }
func (t *Text) Kind() string           { return "text" }

// GroupRole tells which part of the chart a group draws
type GroupRole string

const (
	RoleMonthLine GroupRole = "month-line"
	RoleToday     GroupRole = "today"
	RoleYAxis     GroupRole = "y-axis"
	RoleBars      GroupRole = "bars"
	RoleLegend    GroupRole = "legend"
)

// Group translates its children by (DX, DY)
type Group struct {
	Role     GroupRole
	DX       float64
	DY       float64
	Children []Primitive
}

// Walk visits every child in order, stopping at the first error
func (g *Group) Walk(v Visitor) error {
	for _, child := range g.Children {
		if err := child.Accept(v); err != nil {
			return err
		}
	}
	return nil
}

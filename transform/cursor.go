package transform

// Cursor is a mutable view of a Transform for per-frame updates. Updates
// replace values in place and never change the number or order of
// components. A Cursor is not safe for concurrent use.
type Cursor struct {
	name string
	def  []Component
}

// Cursor returns a mutable copy of t.
func (t Transform) Cursor() *Cursor {
	return &Cursor{name: t.name, def: t.Components()}
}

// Transform returns an immutable snapshot of the cursor.
func (c *Cursor) Transform() Transform {
	return New(c.name, c.def...)
}

// Len returns the number of components.
func (c *Cursor) Len() int { return len(c.def) }

// UpdateScale replaces the index'th scale component.
func (c *Cursor) UpdateScale(s Scale, index int) error {
	return c.update(s, index)
}

// UpdateRotation replaces the index'th rotation component.
func (c *Cursor) UpdateRotation(r Rotate, index int) error {
	return c.update(r, index)
}

// UpdateTranslation replaces the index'th translation component.
func (c *Cursor) UpdateTranslation(t Translate, index int) error {
	return c.update(t, index)
}

func (c *Cursor) update(v Component, index int) error {
	pos, err := position(c.def, v.Kind(), index)
	if err != nil {
		return err
	}
	c.def[pos] = v
	return nil
}

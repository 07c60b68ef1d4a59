package field

import "github.com/plus3/blockfall/loop"

// KeySource reports the key state for the current frame.
type KeySource interface {
	Keys() Keys
}

// KeySourceFunc adapts a function to the KeySource interface.
type KeySourceFunc func() Keys

func (fn KeySourceFunc) Keys() Keys {
	return fn()
}

// Driver is the loop stage that feeds one frame of input into a field and
// then ticks its timers.
type Driver struct {
	field *Field
	keys  KeySource
}

func NewDriver(field *Field, keys KeySource) *Driver {
	return &Driver{field: field, keys: keys}
}

func (d *Driver) Execute(frame *loop.Frame) {
	if d.keys != nil {
		d.field.Input(d.keys.Keys())
	}
	d.field.Update()
}

func (d *Driver) Field() *Field {
	return d.field
}

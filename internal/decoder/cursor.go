package decoder

// Cursor reads the bytes of a single bank. Its position only ever moves forward.
type Cursor struct {
	bank int
	data []byte
	pos  int
}

// NewCursor returns a cursor positioned at offset 0 of the given bank data.
func NewCursor(bank int, data []byte) *Cursor {
	return &Cursor{
		bank: bank,
		data: data,
	}
}

// Bank returns the index of the bank that the cursor reads.
func (c *Cursor) Bank() int {
	return c.bank
}

// Pos returns the current offset within the bank.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the size of the bank.
func (c *Cursor) Len() int {
	return len(c.data)
}

// Remaining returns the number of bytes left to read.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// Peek returns the byte at the given distance from the current position and
// whether it is inside the bank.
func (c *Cursor) Peek(n int) (byte, bool) {
	i := c.pos + n
	if i < 0 || i >= len(c.data) {
		return 0, false
	}
	return c.data[i], true
}

// Advance consumes n bytes and returns them. The returned slice shares the
// underlying bank data and must not be modified.
func (c *Cursor) Advance(n int) []byte {
	if n > c.Remaining() {
		n = c.Remaining()
	}
	b := c.data[c.pos : c.pos+n : c.pos+n]
	c.pos += n
	return b
}

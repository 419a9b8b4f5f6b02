package clipboard

import "errors"

var errAccessDenied = errors.New("access denied")

// tick is what the fake clipboard holds when it is opened
type tick struct {
	text     string
	legacy   []byte
	openErr  error
	getErr   error
	closeErr error
	panics   bool
}

type fakeProvider struct {
	ticks []tick
	next  int

	cur    tick
	open   bool
	opens  int
	closes int
}

func newFakeProvider(ticks ...tick) *fakeProvider {
	return &fakeProvider{ticks: ticks}
}

func texts(values ...string) []tick {
	ticks := make([]tick, len(values))
	for i, v := range values {
		ticks[i] = tick{text: v}
	}
	return ticks
}

func (f *fakeProvider) Open() error {
	f.cur = tick{}
	if f.next < len(f.ticks) {
		f.cur = f.ticks[f.next]
	}
	f.next++
	f.opens++
	if f.cur.openErr != nil {
		return f.cur.openErr
	}
	f.open = true
	return nil
}

func (f *fakeProvider) Close() error {
	f.open = false
	f.closes++
	return f.cur.closeErr
}

func (f *fakeProvider) IsFormatAvailable(format Format) bool {
	if f.cur.panics {
		panic("clipboard exploded")
	}
	switch format {
	case FormatUnicodeText:
		return f.cur.text != ""
	case FormatText:
		return f.cur.legacy != nil
	}
	return false
}

func (f *fakeProvider) GetData(format Format) ([]byte, error) {
	if !f.open {
		return nil, ErrNotOpen
	}
	if f.cur.getErr != nil {
		return nil, f.cur.getErr
	}
	switch format {
	case FormatUnicodeText:
		return []byte(f.cur.text), nil
	case FormatText:
		return f.cur.legacy, nil
	}
	return nil, ErrFormatUnavailable
}

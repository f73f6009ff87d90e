package grid

import (
	"errors"
	"io"
	"time"

	"github.com/wok10-dev/shift-planner/backend/internal/domain"
	"github.com/xuri/excelize/v2"
)

var (
	ErrEmptyGrid         = errors.New("grid: workbook has no rows to decode")
	ErrMissingNameColumn = errors.New("grid: header has no employee name column")
)

const DefaultRestaurantName = "WOK10"

// Codec is stateless apart from its title text and clock, so one value can be
// shared between goroutines. Writes to the same file path must be serialized
// by the caller.
type Codec struct {
	restaurant string
	now        func() time.Time
}

type Option func(*Codec)

// WithRestaurantName sets the name shown in the title row.
func WithRestaurantName(name string) Option {
	return func(c *Codec) {
		if name != "" {
			c.restaurant = name
		}
	}
}

// WithClock replaces time.Now, used for the default week on encode and the
// year on decode.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		c.now = now
	}
}

func New(opts ...Option) *Codec {
	c := &Codec{
		restaurant: DefaultRestaurantName,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Save writes f to path. The extension must be one excelize accepts (.xlsx).
func Save(f *excelize.File, path string) error {
	return f.SaveAs(path)
}

func Load(path string) (*excelize.File, error) {
	return excelize.OpenFile(path)
}

// EncodeFile encodes planning and saves it to path.
func (c *Codec) EncodeFile(path string, planning *domain.WeekPlanning) error {
	f, err := c.Encode(planning)
	if err != nil {
		return err
	}
	defer f.Close()

	return Save(f, path)
}

// ReEncode overwrites the workbook at path with a fresh encode of planning.
// Nothing from the previous file is kept.
func (c *Codec) ReEncode(path string, planning *domain.WeekPlanning) error {
	return c.EncodeFile(path, planning)
}

// WriteTo encodes planning and streams the workbook to w.
func (c *Codec) WriteTo(w io.Writer, planning *domain.WeekPlanning) error {
	f, err := c.Encode(planning)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

func (c *Codec) DecodeFile(path string) (*domain.WeekPlanning, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return c.Decode(f)
}

func (c *Codec) DecodeReader(r io.Reader) (*domain.WeekPlanning, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return c.Decode(f)
}

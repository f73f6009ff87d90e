package grid

import "github.com/xuri/excelize/v2"

type styles struct {
	title     int
	header    int
	subHeader int
	name      int
	cell      int
	total     int
}

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

func centered() *excelize.Alignment {
	return &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}
}

func newStyles(f *excelize.File) (*styles, error) {
	s := &styles{}

	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&s.title, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 12},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		}},
		{&s.header, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 10, Color: "FFFFFF"},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
			Alignment: centered(),
			Border:    thinBorder,
		}},
		{&s.subHeader, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 10},
			Alignment: centered(),
			Border:    thinBorder,
		}},
		{&s.name, &excelize.Style{
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
			Border:    thinBorder,
		}},
		{&s.cell, &excelize.Style{
			Alignment: centered(),
			Border:    thinBorder,
		}},
		{&s.total, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 10},
			Alignment: centered(),
			Border:    thinBorder,
		}},
	}

	for _, def := range defs {
		id, err := f.NewStyle(def.style)
		if err != nil {
			return nil, err
		}
		*def.dst = id
	}

	return s, nil
}

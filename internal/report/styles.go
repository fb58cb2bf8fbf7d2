package report

const (
	colorWhite       Color = "FFFFFF"
	colorTitleFill   Color = "3B82F6"
	colorHeaderFill  Color = "1D4ED8"
	colorBandEven    Color = "F8FAFC"
	colorBandOdd     Color = "FFFFFF"
	colorGridBorder  Color = "E2E8F0"
	colorDivider     Color = "E5E7EB"
	colorIncomeFill  Color = "3B82F6"
	colorExpenseFill Color = "10B981"
	colorBalanceFill Color = "F59E0B"

	// ColorPositive and ColorNegative tint balance figures by sign.
	ColorPositive Color = "059669"
	ColorNegative Color = "DC2626"
)

const (
	titleFontSize  = 16
	headerFontSize = 12
	bodyFontSize   = 11
)

// TitleStyle is the bold white-on-blue report title band.
func TitleStyle() Style {
	return Style{
		Bold:      true,
		Size:      titleFontSize,
		FontColor: colorWhite,
		Fill:      colorTitleFill,
		HAlign:    AlignCenter,
		VCenter:   true,
	}
}

// HeaderStyle is the column header style of tabular reports.
func HeaderStyle() Style {
	return Style{
		Bold:      true,
		Size:      headerFontSize,
		FontColor: colorWhite,
		Fill:      colorHeaderFill,
		HAlign:    AlignCenter,
		VCenter:   true,
		Borders:   AllBorders(colorWhite),
	}
}

// BandFill returns the background of the i-th data row.
func BandFill(i int) Color {
	if i%2 == 0 {
		return colorBandEven
	}
	return colorBandOdd
}

// DataStyle is the style of a body cell.
func DataStyle(fill Color, align HAlign) Style {
	return Style{
		Size:    bodyFontSize,
		Fill:    fill,
		HAlign:  align,
		Borders: AllBorders(colorGridBorder),
	}
}

// SignColor picks the balance tint: non-negative values are positive.
func SignColor(negative bool) Color {
	if negative {
		return ColorNegative
	}
	return ColorPositive
}

func sectionStyle(fill Color) Style {
	return Style{
		Bold:      true,
		Size:      headerFontSize,
		FontColor: colorWhite,
		Fill:      fill,
		HAlign:    AlignCenter,
		VCenter:   true,
	}
}

func subheaderStyle(fill Color) Style {
	s := sectionStyle(fill)
	s.Size = bodyFontSize
	s.Borders = AllBorders(colorWhite)
	return s
}

func dividerStyle() Style {
	return Style{Fill: colorDivider}
}

func totalsStyle(align HAlign) Style {
	s := HeaderStyle()
	s.HAlign = align
	s.VCenter = false
	return s
}

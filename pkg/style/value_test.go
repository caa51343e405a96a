package style

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want Value
	}{
		{"10", Point(10)},
		{"12.5", Point(12.5)},
		{"-4", Point(-4)},
		{" 7 ", Point(7)},
		{"50%", Percent(50)},
		{"33.3%", Percent(33.3)},
		{"auto", Auto},
		{"", Undefined},
		{"undefined", Undefined},
		{"banana", Undefined},
		{"%", Undefined},
		{"10px", Undefined},
		{"NaN", Undefined},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Parse(tt.raw); !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Point(10), "10"},
		{Percent(50), "50%"},
		{Auto, "auto"},
		{Undefined, "undefined"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestValueEqual(t *testing.T) {
	if !Point(5).Equal(Point(5)) {
		t.Error("equal points should compare equal")
	}
	if Point(5).Equal(Percent(5)) {
		t.Error("point and percent with same amount should differ")
	}
	if !Auto.Equal(Value{Amount: 99, Unit: UnitAuto}) {
		t.Error("auto compares by unit only")
	}
}

func TestDefaultCache(t *testing.T) {
	classic := Default(false)
	if classic.FlexDirection != FlexDirectionColumn {
		t.Errorf("classic default main axis = %v, want column", classic.FlexDirection)
	}
	if classic.Direction != DirectionInherit {
		t.Errorf("default direction = %v, want inherit", classic.Direction)
	}
	if !classic.Width.Equal(Auto) || !classic.FlexBasis.Equal(Auto) {
		t.Error("default dimensions and flex basis should be auto")
	}

	web := Default(true)
	if web.FlexDirection != FlexDirectionRow {
		t.Errorf("web default main axis = %v, want row", web.FlexDirection)
	}
	if web.AlignContent != AlignStretch {
		t.Errorf("web default align-content = %v, want stretch", web.AlignContent)
	}
}

func TestFlexDirectionMirror(t *testing.T) {
	tests := []struct {
		in, want FlexDirection
	}{
		{FlexDirectionRow, FlexDirectionRowReverse},
		{FlexDirectionRowReverse, FlexDirectionRow},
		{FlexDirectionColumn, FlexDirectionColumn},
		{FlexDirectionColumnReverse, FlexDirectionColumnReverse},
	}
	for _, tt := range tests {
		if got := tt.in.Mirror(); got != tt.want {
			t.Errorf("%v.Mirror() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

package cursor

import "testing"

func at(index int) Cursor {
	return Cursor{CCursor: CCursor{Index: index}}
}

func TestOneCursorRangeIsEmpty(t *testing.T) {
	r := OneCursorRange(at(3))
	if !r.IsEmpty() {
		t.Error("single-point range IsEmpty() = false, want true")
	}
	if r.Primary != r.Secondary {
		t.Error("single-point range has different ends")
	}
}

func TestTwoCursorRangePrimaryAtMax(t *testing.T) {
	r := TwoCursorRange(at(2), at(7))
	if r.Primary.CCursor.Index != 7 {
		t.Errorf("Primary.Index = %d, want 7", r.Primary.CCursor.Index)
	}
	if r.Secondary.CCursor.Index != 2 {
		t.Errorf("Secondary.Index = %d, want 2", r.Secondary.CCursor.Index)
	}
	if r.IsEmpty() {
		t.Error("two-point range IsEmpty() = true, want false")
	}
}

func TestCursorRangeSorted(t *testing.T) {
	tests := []struct {
		name               string
		primary, secondary int
	}{
		{"forward", 7, 2},
		{"backward", 2, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CursorRange{Primary: at(tt.primary), Secondary: at(tt.secondary)}
			s := r.Sorted()
			if s[0].CCursor.Index != 2 || s[1].CCursor.Index != 7 {
				t.Errorf("Sorted() = [%d, %d], want [2, 7]",
					s[0].CCursor.Index, s[1].CCursor.Index)
			}
		})
	}
}

func TestCursorRangeExtend(t *testing.T) {
	tests := []struct {
		name                       string
		base, other                CursorRange
		wantPrimary, wantSecondary int
	}{
		{
			name:          "grow rightward keeps primary right",
			base:          TwoCursorRange(at(2), at(5)),
			other:         TwoCursorRange(at(4), at(9)),
			wantPrimary:   9,
			wantSecondary: 2,
		},
		{
			name:          "grow leftward moves primary left",
			base:          TwoCursorRange(at(4), at(9)),
			other:         TwoCursorRange(at(0), at(5)),
			wantPrimary:   0,
			wantSecondary: 9,
		},
		{
			name:          "contained range changes nothing",
			base:          TwoCursorRange(at(2), at(9)),
			other:         TwoCursorRange(at(4), at(5)),
			wantPrimary:   9,
			wantSecondary: 2,
		},
		{
			name:          "disjoint on the left",
			base:          TwoCursorRange(at(6), at(9)),
			other:         TwoCursorRange(at(0), at(2)),
			wantPrimary:   0,
			wantSecondary: 9,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.base.Extend(tt.other)
			if got.Primary.CCursor.Index != tt.wantPrimary {
				t.Errorf("Primary.Index = %d, want %d", got.Primary.CCursor.Index, tt.wantPrimary)
			}
			if got.Secondary.CCursor.Index != tt.wantSecondary {
				t.Errorf("Secondary.Index = %d, want %d", got.Secondary.CCursor.Index, tt.wantSecondary)
			}
		})
	}
}

func TestCursorRangeExtendCoversBoth(t *testing.T) {
	base := TwoCursorRange(at(3), at(6))
	other := TwoCursorRange(at(1), at(8))
	got := base.Extend(other).Sorted()
	if got[0].CCursor.Index != 1 || got[1].CCursor.Index != 8 {
		t.Errorf("Extend() span = [%d, %d], want [1, 8]",
			got[0].CCursor.Index, got[1].CCursor.Index)
	}
}

func TestAsCCursorRange(t *testing.T) {
	r := CursorRange{
		Primary:   Cursor{CCursor: CCursor{Index: 5, PreferNextRow: true}},
		Secondary: Cursor{CCursor: CCursor{Index: 1}},
	}
	got := r.AsCCursorRange()
	if got.Primary.Index != 5 || !got.Primary.PreferNextRow {
		t.Errorf("Primary = %+v, want index 5 with preference", got.Primary)
	}
	if got.Secondary.Index != 1 {
		t.Errorf("Secondary.Index = %d, want 1", got.Secondary.Index)
	}
}

func TestCCursorRange(t *testing.T) {
	r := TwoCCursorRange(NewCCursor(2), NewCCursor(6))
	if r.Primary.Index != 6 || r.Secondary.Index != 2 {
		t.Errorf("TwoCCursorRange = %+v, want primary 6, secondary 2", r)
	}
	if r.IsEmpty() {
		t.Error("IsEmpty() = true for a non-empty range")
	}

	s := CCursorRange{Primary: NewCCursor(6), Secondary: NewCCursor(2)}.Sorted()
	if s[0].Index != 2 || s[1].Index != 6 {
		t.Errorf("Sorted() = [%d, %d], want [2, 6]", s[0].Index, s[1].Index)
	}

	if !OneCCursorRange(NewCCursor(4)).IsEmpty() {
		t.Error("single-point CCursorRange IsEmpty() = false, want true")
	}
}

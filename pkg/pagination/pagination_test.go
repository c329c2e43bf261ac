package pagination

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		in         LimitOffsetParams
		wantLimit  int
		wantOffset int
	}{
		{"zero value gets defaults", LimitOffsetParams{}, DefaultLimit, 0},
		{"negative limit gets default", LimitOffsetParams{Limit: -5}, DefaultLimit, 0},
		{"limit above cap is clamped", LimitOffsetParams{Limit: 500}, MaxLimit, 0},
		{"negative offset is reset", LimitOffsetParams{Limit: 10, Offset: -1}, 10, 0},
		{"valid values pass through", LimitOffsetParams{Limit: 50, Offset: 40}, 50, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			p.Validate()
			if p.Limit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", p.Limit, tt.wantLimit)
			}
			if p.Offset != tt.wantOffset {
				t.Errorf("offset = %d, want %d", p.Offset, tt.wantOffset)
			}
		})
	}
}

func TestNewListResult(t *testing.T) {
	result := NewListResult([]string{"a", "b"})
	if result.Count != 2 {
		t.Errorf("count = %d, want 2", result.Count)
	}
	if len(result.Items) != 2 {
		t.Errorf("items = %d, want 2", len(result.Items))
	}

	empty := NewListResult([]int{})
	if empty.Count != 0 {
		t.Errorf("empty count = %d, want 0", empty.Count)
	}
}

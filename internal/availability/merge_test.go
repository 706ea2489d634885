package availability

import (
	"testing"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		in   [][2]string
		want [][2]string
	}{
		{"empty", nil, nil},
		{"single", [][2]string{{"09:00", "10:00"}}, [][2]string{{"09:00", "10:00"}}},
		{"touching", [][2]string{{"09:00", "09:30"}, {"09:30", "10:00"}}, [][2]string{{"09:00", "10:00"}}},
		{"overlapping unsorted", [][2]string{{"10:00", "11:00"}, {"09:00", "10:30"}}, [][2]string{{"09:00", "11:00"}}},
		{"contained", [][2]string{{"09:00", "12:00"}, {"10:00", "10:15"}}, [][2]string{{"09:00", "12:00"}}},
		{"disjoint", [][2]string{{"13:00", "14:00"}, {"09:00", "09:30"}}, [][2]string{{"09:00", "09:30"}, {"13:00", "14:00"}}},
		{
			"chain",
			[][2]string{{"11:00", "11:30"}, {"09:00", "09:45"}, {"09:30", "10:00"}, {"10:00", "10:10"}},
			[][2]string{{"09:00", "10:10"}, {"11:00", "11:30"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in []Interval
			for _, p := range tt.in {
				in = append(in, span(t, p[0], p[1]))
			}

			got := Merge(in)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d intervals, got %d: %v", len(tt.want), len(got), got)
			}
			for i, w := range tt.want {
				if !got[i].Start.Equal(at(t, w[0])) || !got[i].End.Equal(at(t, w[1])) {
					t.Fatalf("interval %d: expected %s-%s, got %s-%s", i, w[0], w[1],
						got[i].Start.Format(ClockLayout), got[i].End.Format(ClockLayout))
				}
			}
		})
	}
}

func TestMerge_Idempotent(t *testing.T) {
	in := []Interval{span(t, "08:00", "08:30"), span(t, "09:00", "09:15"), span(t, "12:00", "13:00")}

	once := Merge(in)
	twice := Merge(once)
	if len(once) != len(in) || len(twice) != len(in) {
		t.Fatalf("expected %d intervals, got %d then %d", len(in), len(once), len(twice))
	}
	for i := range in {
		if once[i] != in[i] || twice[i] != in[i] {
			t.Fatalf("interval %d changed: %v -> %v -> %v", i, in[i], once[i], twice[i])
		}
	}
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	in := []Interval{span(t, "10:00", "11:00"), span(t, "09:00", "10:30")}
	first := in[0]

	Merge(in)
	if in[0] != first {
		t.Fatalf("input reordered: %v", in)
	}
}

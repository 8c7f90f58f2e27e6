package merge

import (
	"reflect"
	"testing"
)

func TestMergeDependenciesDisjoint(t *testing.T) {
	existing := map[string]string{"react": "^17.0.0"}
	incoming := map[string]string{"react-dom": "^17.0.0"}

	got := MergeDependencies(existing, incoming)

	want := map[string]string{"react": "^17.0.0", "react-dom": "^17.0.0"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeDependencies = %v, want %v", got, want)
	}
}

func TestMergeDependenciesHigherBaseWins(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		incoming string
		want     string
	}{
		{"incoming newer", "^16.0.0", "^17.0.0", "^17.0.0"},
		{"existing newer", "^17.0.0", "^16.0.0", "^17.0.0"},
		{"tilde ranges", "~1.2.3", "~1.3.0", "~1.3.0"},
		{"equal bases prefer incoming", "^4.0.0", "~4.0.0", "~4.0.0"},
		{"v prefix tolerated", "v2.0.0", "v1.0.0", "v2.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeDependencies(
				map[string]string{"pkg": tt.existing},
				map[string]string{"pkg": tt.incoming},
			)
			if got["pkg"] != tt.want {
				t.Errorf("pkg = %q, want %q", got["pkg"], tt.want)
			}
		})
	}
}

func TestMergeDependenciesUnparsableIncomingWins(t *testing.T) {
	got := MergeDependencies(
		map[string]string{"left-pad": "^1.3.0"},
		map[string]string{"left-pad": "file:../left-pad"},
	)

	if got["left-pad"] != "file:../left-pad" {
		t.Errorf("left-pad = %q, want incoming to overwrite", got["left-pad"])
	}
}

func TestMergeDependenciesIdempotentOnIdenticalMaps(t *testing.T) {
	deps := map[string]string{"react": "^17.0.0", "webpack": "^5.50.0"}

	got := MergeDependencies(deps, deps)

	if !reflect.DeepEqual(got, deps) {
		t.Errorf("MergeDependencies(m, m) = %v, want %v", got, deps)
	}
}

func TestMergeDependenciesDoesNotMutateInputs(t *testing.T) {
	existing := map[string]string{"react": "^16.0.0"}
	incoming := map[string]string{"react": "^17.0.0"}

	_ = MergeDependencies(existing, incoming)

	if existing["react"] != "^16.0.0" {
		t.Error("existing map was mutated")
	}
	if incoming["react"] != "^17.0.0" {
		t.Error("incoming map was mutated")
	}
}

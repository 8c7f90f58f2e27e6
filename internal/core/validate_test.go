package core

import "testing"

func TestValidateCreateCommandValidTypes(t *testing.T) {
	for _, typ := range []string{"app", "lib", "anything-nonempty"} {
		got := ValidateCreateCommand(CreateArgs{Type: typ})
		if !got.Validated {
			t.Errorf("ValidateCreateCommand(%q).Validated = false, want true", typ)
		}
		if got.Message != "" {
			t.Errorf("ValidateCreateCommand(%q).Message = %q, want empty", typ, got.Message)
		}
	}
}

func TestValidateCreateCommandMissingType(t *testing.T) {
	got := ValidateCreateCommand(CreateArgs{})

	if got.Validated {
		t.Error("Validated = true, want false")
	}
	if got.Message != missingTypeMessage {
		t.Errorf("Message = %q, want the fixed message %q", got.Message, missingTypeMessage)
	}
}

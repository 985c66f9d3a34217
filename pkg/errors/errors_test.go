package errors

import (
	stdErrors "errors"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		exit      int
		retryable bool
	}{
		{code: CodeInvalidInput, exit: 2},
		{code: CodeMissingSource, exit: 3},
		{code: CodeBadRecord, exit: 4},
		{code: CodeOutput, exit: 5, retryable: true},
		{code: CodeDependency, exit: 6, retryable: true},
		{code: CodeInternal, exit: 1},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.ExitStatus != tt.exit {
			t.Fatalf("code %s expected exit %d got %d", tt.code, tt.exit, meta.ExitStatus)
		}
		if meta.Retryable != tt.retryable {
			t.Fatalf("code %s expected retryable %v got %v", tt.code, tt.retryable, meta.Retryable)
		}
	}
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	meta := MetadataFor(Code("NOPE"))
	if meta.ExitStatus != MetadataFor(CodeInternal).ExitStatus {
		t.Fatalf("unknown code should fall back to internal metadata, got %+v", meta)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("no such file")
	err := Wrap(CodeMissingSource, cause, "loading customers")

	if !stdErrors.Is(err, cause) {
		t.Fatal("wrapped error should match its cause")
	}
	typed := As(err)
	if typed == nil || typed.Code() != CodeMissingSource {
		t.Fatalf("expected MISSING_SOURCE, got %v", err)
	}
}

func TestWrapNilCauseBehavesLikeNew(t *testing.T) {
	err := Wrap(CodeInvalidInput, nil, "bad fraction")
	if err.Unwrap() != nil {
		t.Fatal("nil cause should not produce an unwrap target")
	}
	if err.Error() != "INVALID_INPUT: bad fraction" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestExitStatus(t *testing.T) {
	if got := ExitStatus(nil); got != 0 {
		t.Fatalf("nil error should exit 0, got %d", got)
	}
	if got := ExitStatus(stdErrors.New("plain")); got != 1 {
		t.Fatalf("untyped error should exit 1, got %d", got)
	}
	if got := ExitStatus(New(CodeMissingSource, "gone")); got != 3 {
		t.Fatalf("missing source should exit 3, got %d", got)
	}
}

func TestAsOnForeignError(t *testing.T) {
	if As(stdErrors.New("plain")) != nil {
		t.Fatal("expected nil for untyped error")
	}
	if As(nil) != nil {
		t.Fatal("expected nil for nil error")
	}
}

func TestDumpCollectsChain(t *testing.T) {
	cause := stdErrors.New("disk full")
	err := Wrap(CodeOutput, cause, "writing shipping table")

	d := Dump(err)
	if d.Code != CodeOutput {
		t.Fatalf("expected OUTPUT_ERROR, got %s", d.Code)
	}
	if len(d.Chain) < 2 {
		t.Fatalf("expected full chain, got %v", d.Chain)
	}
}

package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/agendahub/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	if got := htmlsanitize.Sanitize(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestSanitize_PlainText(t *testing.T) {
	in := "주간 업무 보고: 회의실 예약 완료"
	if got := htmlsanitize.Sanitize(in); got != in {
		t.Errorf("plain text should pass through, got %q", got)
	}
}

func TestSanitize_StripsScript(t *testing.T) {
	got := htmlsanitize.Sanitize(`보고<script>alert("x")</script>내용`)
	if strings.Contains(got, "<script") || strings.Contains(got, "alert") {
		t.Errorf("script not removed: %q", got)
	}
	if !strings.Contains(got, "보고") || !strings.Contains(got, "내용") {
		t.Errorf("surrounding text lost: %q", got)
	}
}

func TestSanitize_StripsEventHandlers(t *testing.T) {
	got := htmlsanitize.Sanitize(`<p onclick="steal()">메모</p>`)
	if strings.Contains(got, "onclick") {
		t.Errorf("event handler not removed: %q", got)
	}
}

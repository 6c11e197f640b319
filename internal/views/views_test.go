package views

import (
	"strings"
	"testing"
)

func TestRenderRunningPanelHiddenWhenNotVisible(t *testing.T) {
	if out := RenderRunningPanel(RunningPanelData{Timer: "01:00"}); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestRenderRunningPanelToggleLabel(t *testing.T) {
	running := RenderRunningPanel(RunningPanelData{Visible: true, Timer: "01:05"})
	if !strings.Contains(running, "01:05") || !strings.Contains(running, "[space]pause") {
		t.Fatalf("unexpected running panel: %q", running)
	}
	paused := RenderRunningPanel(RunningPanelData{Visible: true, Timer: "00:59", Paused: true})
	if !strings.Contains(paused, "[space]continue") || !strings.Contains(paused, "paused") {
		t.Fatalf("unexpected paused panel: %q", paused)
	}
}

func TestRenderPickerPanelShowsNeighbours(t *testing.T) {
	out := RenderPickerPanel(PickerPanelData{Minute: 0, Second: 59, Focused: "minute"})
	for _, want := range []string{"00", "01", "02", "57", "58", "59"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in picker: %q", want, out)
		}
	}
	if strings.Contains(out, "60") {
		t.Fatalf("picker must not show out-of-range values: %q", out)
	}
}

func TestRenderPresetPanelRows(t *testing.T) {
	labels := []string{"1:00", "1:30", "2:00", "2:30", "3:00", "5:00", "6:00"}
	keys := []string{"1", "2", "3", "4", "5", "6", "7"}
	out := RenderPresetPanel(PresetPanelData{Labels: labels, Keys: keys, Active: -1})
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected title plus two rows, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[2], "[7]6:00") {
		t.Fatalf("unexpected second row: %q", lines[2])
	}
}

func TestRenderAppIncludesOverlayAndStatus(t *testing.T) {
	out := RenderApp(AppData{Header: "intervald", Overlay: "00:03", StatusLine: "status: error: boom", Footer: "keys"})
	for _, want := range []string{"intervald", "00:03", "boom", "keys"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output", want)
		}
	}
}

func TestRenderNotification(t *testing.T) {
	if out := RenderNotification("info", "  "); out != "" {
		t.Fatalf("expected empty output for blank body, got %q", out)
	}
	out := RenderNotification("alert", "7:30 interval finished")
	if !strings.Contains(out, "[ALERT]") || !strings.Contains(out, "7:30 interval finished") {
		t.Fatalf("unexpected notification: %q", out)
	}
}

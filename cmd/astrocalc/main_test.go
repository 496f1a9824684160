package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/yackko/astro-tools/internal/catalog"
	"github.com/yackko/astro-tools/internal/optics"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestExposureCmd_Table(t *testing.T) {
	out, _, err := execute(t, "exposure", "--f1", "5", "--t1", "60", "--f2", "10")
	if err != nil {
		t.Fatalf("exposure error = %v", err)
	}
	if !strings.Contains(out, "240.00 seconds - 4.00 minutes") {
		t.Errorf("missing exposure time 2, got:\n%s", out)
	}
	if !strings.Contains(out, "4.00x") {
		t.Errorf("missing ratio, got:\n%s", out)
	}
}

func TestExposureCmd_InvalidInputShowsPlaceholder(t *testing.T) {
	out, _, err := execute(t, "exposure", "--t1", "60", "--f2", "10")
	if err != nil {
		t.Fatalf("exposure error = %v", err)
	}
	if !strings.Contains(out, "Exposure Time 2:  --") {
		t.Errorf("expected placeholder, got:\n%s", out)
	}
}

func TestExposureCmd_Autofill(t *testing.T) {
	out, _, err := execute(t, "exposure",
		"--telescope1", "Celestron.NexStar Evolution 6",
		"--time", "1 minute",
		"--telescope2", "Celestron.NexStar Evolution 6 + Starizona HyperStar",
		"-O", "json")
	if err != nil {
		t.Fatalf("exposure error = %v", err)
	}

	var got struct {
		Inputs map[string]float64 `json:"inputs"`
		Result optics.Exposure    `json:"result"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if got.Inputs["f1"] != 10 || got.Inputs["t1"] != 60 || got.Inputs["f2"] != 2 {
		t.Errorf("inputs = %v, want f1=10 t1=60 f2=2", got.Inputs)
	}
	if got.Result.T2Label != "2.40" {
		t.Errorf("T2Label = %q, want 2.40", got.Result.T2Label)
	}
}

func TestExposureCmd_ExplicitFlagOverridesAutofill(t *testing.T) {
	out, _, err := execute(t, "exposure", "--telescope1", "Celestron.NexStar Evolution 6", "--f1", "5", "--t1", "60", "--f2", "5", "-O", "json")
	if err != nil {
		t.Fatalf("exposure error = %v", err)
	}
	if !strings.Contains(out, `"f1": 5`) {
		t.Errorf("explicit --f1 should win over telescope, got:\n%s", out)
	}
}

func TestExposureCmd_UnknownTelescope(t *testing.T) {
	_, _, err := execute(t, "exposure", "--telescope1", "Meade.LX200")
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestMagnificationCmd(t *testing.T) {
	out, _, err := execute(t, "magnification", "--aperture", "150", "--focal-length", "1500", "--eyepiece-focal-length", "25", "--eyepiece-fov", "52")
	if err != nil {
		t.Fatalf("magnification error = %v", err)
	}
	for _, want := range []string{"Maximum Magnification:", "350.00", "Magnification:", "60.00", "0.87°"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMagnificationCmd_Barlow(t *testing.T) {
	for _, b := range []string{"2", "2x", "2X"} {
		out, _, err := execute(t, "magnification", "--telescope", "Celestron.NexStar Evolution 6", "--eyepiece", "Celestron.X-Cell LX.25mm", "--barlow", b)
		if err != nil {
			t.Fatalf("magnification --barlow %s error = %v", b, err)
		}
		if !strings.Contains(out, "120.00") {
			t.Errorf("--barlow %s: missing 120.00 magnification:\n%s", b, out)
		}
		if !strings.Contains(out, "1.00°") {
			t.Errorf("--barlow %s: field of view should ignore the barlow:\n%s", b, out)
		}
	}

	if _, _, err := execute(t, "magnification", "--barlow", "double"); err == nil {
		t.Error("--barlow double should fail")
	}
}

func TestHFRCmd(t *testing.T) {
	out, _, err := execute(t, "hfr", "--focal-length", "1500", "--aperture", "150", "--pixel-size", "3.8", "--hfr", "2.5")
	if err != nil {
		t.Fatalf("hfr error = %v", err)
	}
	for _, want := range []string{"0.52", "2.61", "0.77", "Good Seeing:", "Over-Sampled (0.67 - 2.00)", "Very Poor Seeing:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestHFRCmd_JSON(t *testing.T) {
	out, _, err := execute(t, "hfr", "--telescope", "Celestron.NexStar Evolution 6", "--camera", "ZWO.ASI533MC Pro", "--hfr", "2", "-O", "json")
	if err != nil {
		t.Fatalf("hfr error = %v", err)
	}
	var got struct {
		Result struct {
			ArcSecPerPixelLabel string `json:"arcSecPerPixelLabel"`
			Sampling            []struct {
				Tier     string `json:"tier"`
				Sampling string `json:"sampling"`
			} `json:"sampling"`
		} `json:"result"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if got.Result.ArcSecPerPixelLabel != "0.52" {
		t.Errorf("arcSecPerPixelLabel = %q, want 0.52", got.Result.ArcSecPerPixelLabel)
	}
	if len(got.Result.Sampling) != 5 {
		t.Fatalf("sampling has %d tiers, want 5", len(got.Result.Sampling))
	}
	if got.Result.Sampling[1].Tier != "good" || got.Result.Sampling[1].Sampling != "good" {
		t.Errorf("good tier = %+v", got.Result.Sampling[1])
	}
}

func TestSamplingCmd(t *testing.T) {
	tests := []struct {
		resolution string
		want       string
	}{
		{"0.5", "Over-Sampled"},
		{"1.0", "Good"},
		{"2.5", "Under-Sampled"},
		{"0", "--"},
	}
	for _, tt := range tests {
		out, _, err := execute(t, "sampling", "ok", "--resolution", tt.resolution)
		if err != nil {
			t.Fatalf("sampling error = %v", err)
		}
		if !strings.Contains(out, tt.want) {
			t.Errorf("sampling ok %s: missing %q:\n%s", tt.resolution, tt.want, out)
		}
		if !strings.Contains(out, "0.67 - 2.00") {
			t.Errorf("sampling ok %s: missing range:\n%s", tt.resolution, out)
		}
	}
}

func TestSamplingCmd_AllTiersFromOptics(t *testing.T) {
	out, _, err := execute(t, "sampling", "--focal-length", "1500", "--pixel-size", "3.8")
	if err != nil {
		t.Fatalf("sampling error = %v", err)
	}
	for _, tier := range optics.SeeingTiers {
		if !strings.Contains(out, tier.String()) {
			t.Errorf("output missing tier %s:\n%s", tier, out)
		}
	}
	if !strings.Contains(out, "1.67 - ...") {
		t.Errorf("very poor range should be open ended:\n%s", out)
	}
}

func TestSamplingCmd_UnknownTier(t *testing.T) {
	_, _, err := execute(t, "sampling", "awful", "--resolution", "1")
	if !errors.Is(err, optics.ErrUnknownSeeing) {
		t.Errorf("error = %v, want ErrUnknownSeeing", err)
	}
}

func TestDurationCmd(t *testing.T) {
	out, _, err := execute(t, "duration", "0", "5", "60", "90")
	if err != nil {
		t.Fatalf("duration error = %v", err)
	}
	for _, want := range []string{"0 seconds", "5 seconds", "1 minute", "1 minute 30 seconds"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, _, err := execute(t, "duration", "-5"); err == nil {
		t.Error("negative duration should fail")
	}
}

func TestCatalogCmd(t *testing.T) {
	out, _, err := execute(t, "catalog", "eyepieces")
	if err != nil {
		t.Fatalf("catalog error = %v", err)
	}
	for _, id := range catalog.IDs(catalog.KindEyepieces) {
		if !strings.Contains(out, id) {
			t.Errorf("output missing %q:\n%s", id, out)
		}
	}

	out, _, err = execute(t, "catalog", "telescope", "-O", "json")
	if err != nil {
		t.Fatalf("catalog json error = %v", err)
	}
	var tels []map[string]any
	if err := json.Unmarshal([]byte(out), &tels); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(tels) != len(catalog.Telescopes()) {
		t.Errorf("got %d telescopes, want %d", len(tels), len(catalog.Telescopes()))
	}

	if _, _, err := execute(t, "catalog", "mounts"); err == nil {
		t.Error("unknown catalog should fail")
	}
}

func TestExplainCmd(t *testing.T) {
	out, _, err := execute(t, "explain", "hfr")
	if err != nil {
		t.Fatalf("explain error = %v", err)
	}
	if !strings.Contains(out, "Half-Flux Radius") {
		t.Errorf("unexpected explanation:\n%s", out)
	}

	_, errOut, err := execute(t, "explain", "wormhole")
	if err == nil {
		t.Fatal("unknown term should fail")
	}
	if !strings.Contains(errOut, "focal-ratio") {
		t.Errorf("stderr should list supported terms:\n%s", errOut)
	}
}

func TestVerboseGoesToStderr(t *testing.T) {
	out, errOut, err := execute(t, "exposure", "--f1", "10", "--t1", "60", "--f2", "5", "-v")
	if err != nil {
		t.Fatalf("exposure error = %v", err)
	}
	if !strings.Contains(errOut, "f1=10 t1=60 f2=5") {
		t.Errorf("stderr missing inputs: %q", errOut)
	}
	if strings.Contains(out, "exposure inputs") {
		t.Error("verbose output leaked to stdout")
	}
}

func TestInvalidOutputFormat(t *testing.T) {
	if _, _, err := execute(t, "duration", "5", "-O", "xml"); err == nil {
		t.Error("--output xml should fail")
	}
	if _, _, err := execute(t, "duration", "5", "-O", "tui"); err == nil {
		t.Error("duration has no interactive form")
	}
}

func TestTUIUnknownScreen(t *testing.T) {
	if _, _, err := execute(t, "tui", "nope"); err == nil {
		t.Error("unknown screen should fail")
	}
}

func TestExposureCmd_OverflowJSON(t *testing.T) {
	out, _, err := execute(t, "exposure", "--f1", "1e-200", "--t1", "60", "--f2", "1e200", "-O", "json")
	if err != nil {
		t.Fatalf("exposure error = %v", err)
	}
	var got struct {
		Result optics.Exposure `json:"result"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if got.Result.T2 != 0 || got.Result.T2Label != "--" || got.Result.RatioLabel != "--" {
		t.Errorf("result = %+v, want undefined", got.Result)
	}
}

func TestNonFiniteFlagsReadAsMissing(t *testing.T) {
	out, _, err := execute(t, "exposure", "--f1", "NaN", "--t1", "60", "--f2", "5")
	if err != nil {
		t.Fatalf("exposure error = %v", err)
	}
	if !strings.Contains(out, "Exposure Time 2:  --") {
		t.Errorf("NaN --f1 should give placeholder, got:\n%s", out)
	}

	out, _, err = execute(t, "hfr", "--focal-length", "1500", "--pixel-size", "Inf", "--hfr", "NaN", "-O", "json")
	if err != nil {
		t.Fatalf("hfr error = %v", err)
	}
	if !strings.Contains(out, `"pixel-size": 0`) || !strings.Contains(out, `"hfr": 0`) {
		t.Errorf("non-finite inputs should read as 0, got:\n%s", out)
	}

	if _, _, err := execute(t, "magnification", "--barlow", "NaN"); err == nil {
		t.Error("--barlow NaN should fail")
	}
}

func TestJSONErrorSilencesUsage(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	if err := printJSON(cmd, math.Inf(1)); err == nil {
		t.Fatal("printJSON(+Inf) should fail")
	}
	if !cmd.SilenceUsage {
		t.Error("a JSON encoding failure should not print usage")
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be written on failure, got %q", out.String())
	}
}

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func writeManifest(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "yes.toml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write yes.toml: %v", err)
	}
}

func TestManifestLiterals(t *testing.T) {
	convey.Convey("yes.toml is discovered walking upward", t, func() {
		dir := t.TempDir()
		sub := filepath.Join(dir, "a", "b")
		convey.So(os.MkdirAll(sub, 0o755), convey.ShouldBeNil)
		writeManifest(t, dir, "[parse]\nliterals = [\"[]\", \"{}\"]\n")

		pairs, err := manifestLiterals(sub)
		convey.So(err, convey.ShouldBeNil)
		convey.So(pairs, convey.ShouldResemble, []string{"[]", "{}"})
	})

	convey.Convey("a missing manifest yields nothing", t, func() {
		pairs, err := manifestLiterals(t.TempDir())
		convey.So(err, convey.ShouldBeNil)
		convey.So(pairs, convey.ShouldBeNil)
	})
}

func TestCollectLiterals(t *testing.T) {
	convey.Convey("manifest pairs merge with flag pairs", t, func() {
		dir := t.TempDir()
		writeManifest(t, dir, "[parse]\nliterals = [\"[]\"]\n")

		literals, err := collectLiterals(dir, []string{"{}"})
		convey.So(err, convey.ShouldBeNil)
		convey.So(len(literals), convey.ShouldEqual, 2)
		convey.So(literals[0].Begin, convey.ShouldEqual, byte('['))
		convey.So(literals[1].End, convey.ShouldEqual, byte('}'))
	})

	convey.Convey("a pair must be exactly two bytes", t, func() {
		_, err := collectLiterals(t.TempDir(), []string{"[=]"})
		convey.So(err, convey.ShouldNotBeNil)
	})

	convey.Convey("reserved glyphs are rejected", t, func() {
		_, err := collectLiterals(t.TempDir(), []string{"=x"})
		convey.So(err, convey.ShouldNotBeNil)
	})
}

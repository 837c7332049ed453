package yes

import (
	"strings"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
)

type shout string

func (s *shout) UnmarshalText(text []byte) error {
	*s = shout(strings.ToUpper(string(text)))
	return nil
}

func frameElement(t *testing.T) *Element {
	t.Helper()
	results, err := ParseString("frame duration = 1.0s , width = 10, height=20, visible=true, label=go")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return onlyElement(t, results)
}

func TestGetOr(t *testing.T) {
	convey.Convey("typed access with default fallback", t, func() {
		el := frameElement(t)

		convey.Convey("matching types return the stored value", func() {
			convey.So(GetOr(el, "width", 0), convey.ShouldEqual, 10)
			convey.So(GetOr(el, "height", int64(0)), convey.ShouldEqual, int64(20))
			convey.So(GetOr(el, "duration", ""), convey.ShouldEqual, "1.0s")
			convey.So(GetOr(el, "duration", time.Duration(0)), convey.ShouldEqual, time.Second)
			convey.So(GetOr(el, "visible", false), convey.ShouldBeTrue)
			convey.So(GetOr(el, "width", float64(0)), convey.ShouldEqual, 10.0)
		})

		convey.Convey("absent keys fall back", func() {
			convey.So(GetOr(el, "missing_key", "0s"), convey.ShouldEqual, "0s")
			convey.So(GetOr(el, "missing_key", 7), convey.ShouldEqual, 7)
		})

		convey.Convey("unparseable values fall back", func() {
			convey.So(GetOr(el, "duration", 0), convey.ShouldEqual, 0)
			convey.So(GetOr(el, "label", 42), convey.ShouldEqual, 42)
		})

		convey.Convey("narrowing overflow falls back instead of wrapping", func() {
			results, err := ParseString("e big=300")
			convey.So(err, convey.ShouldBeNil)
			big := onlyElement(t, results)
			convey.So(GetOr(big, "big", int8(5)), convey.ShouldEqual, int8(5))
			convey.So(GetOr(big, "big", int16(0)), convey.ShouldEqual, int16(300))
			convey.So(GetOr(big, "big", uint8(9)), convey.ShouldEqual, uint8(9))
		})

		convey.Convey("text unmarshalers parse themselves", func() {
			convey.So(GetOr(el, "label", shout("")), convey.ShouldEqual, shout("GO"))
		})
	})
}

func TestArgOr(t *testing.T) {
	convey.Convey("positional access by token order", t, func() {
		results, err := ParseString("x a=b -c 5")
		convey.So(err, convey.ShouldBeNil)
		el := onlyElement(t, results)

		convey.So(ArgOr(el, 1, ""), convey.ShouldEqual, "-c")
		convey.So(ArgOr(el, 2, 0), convey.ShouldEqual, 5)
		convey.So(ArgOr(el, 9, "none"), convey.ShouldEqual, "none")
		convey.So(ArgOr(el, -1, "none"), convey.ShouldEqual, "none")
	})
}

func TestHasKeys(t *testing.T) {
	convey.Convey("key presence checks ignore positional args", t, func() {
		el := frameElement(t)
		convey.So(el.HasKey("width"), convey.ShouldBeTrue)
		convey.So(el.HasKey("nope"), convey.ShouldBeFalse)
		convey.So(el.HasKeys([]string{"width", "height", "duration"}), convey.ShouldBeTrue)
		convey.So(el.HasKeys([]string{"width", "nope"}), convey.ShouldBeFalse)
	})
}

func TestUpsert(t *testing.T) {
	convey.Convey("upsert replaces named args and appends nameless ones", t, func() {
		el := &Element{Name: "e"}
		el.Upsert(KeyVal{Key: "a", Val: "1"})
		el.Upsert(KeyVal{Key: "a", Val: "2"})
		el.Upsert(KeyVal{Val: "pos"})
		el.Upsert(KeyVal{Val: "pos"})

		convey.So(len(el.Args), convey.ShouldEqual, 3)
		convey.So(el.Args[0].Val, convey.ShouldEqual, "2")
		convey.So(el.Args[1].Nameless(), convey.ShouldBeTrue)
	})
}

func TestRoundTrip(t *testing.T) {
	convey.Convey("plain key=value pairs survive unchanged", t, func() {
		for _, v := range []string{"10", "1.0s", "hello", "-3.25", "true"} {
			results, err := ParseString("e k=" + v)
			convey.So(err, convey.ShouldBeNil)
			el := onlyElement(t, results)
			convey.So(GetOr(el, "k", ""), convey.ShouldEqual, v)
		}
	})
}

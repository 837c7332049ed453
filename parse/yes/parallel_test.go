package yes

import (
	"context"
	"reflect"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestParallelMatchesSequential(t *testing.T) {
	convey.Convey("parallel tokenization preserves order and content", t, func() {
		content := "# doc\n[slow] frame duration=2s, width=10\nsay text=a\\\nb\n\nbad=\"oops\nvar x=1 y=2"

		seq, err := ParseString(content)
		convey.So(err, convey.ShouldBeNil)

		for _, jobs := range []int{0, 1, 4} {
			par, err := ParseStringParallel(context.Background(), content, jobs)
			convey.So(err, convey.ShouldBeNil)
			convey.So(reflect.DeepEqual(par, seq), convey.ShouldBeTrue)
		}
	})

	convey.Convey("a pending continuation still closes the document", t, func() {
		par, err := ParseStringParallel(context.Background(), "say a\\", 2)
		convey.So(err, convey.ShouldBeNil)
		convey.So(len(par), convey.ShouldEqual, 1)
		convey.So(par[0].Err.Code, convey.ShouldEqual, ErrUnterminatedContinuation)
	})

	convey.Convey("a cancelled context stops the fan-out", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := ParseStringParallel(ctx, "frame width=10\nframe width=20", 2)
		convey.So(err, convey.ShouldNotBeNil)
	})
}

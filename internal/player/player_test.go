package player_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoscope/internal/player"
	"github.com/san-kum/algoscope/internal/trace"
)

func steps(n int) []trace.Step {
	out := make([]trace.Step, n)
	for i := range out {
		out[i] = trace.Step{Index: i, Line: i % 3}
	}
	return out
}

var _ = Describe("Player", func() {
	var p *player.Player

	BeforeEach(func() {
		var err error
		p, err = player.New(steps(4), player.WithInterval(100*time.Millisecond))
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects an empty history", func() {
		_, err := player.New(nil)
		Expect(err).To(MatchError(player.ErrNoSteps))
	})

	It("starts paused on the first step", func() {
		Expect(p.Cursor()).To(Equal(0))
		Expect(p.Playing()).To(BeFalse())
		Expect(p.Current().Index).To(Equal(0))
		Expect(p.AtStart()).To(BeTrue())
	})

	Describe("stepping", func() {
		It("clamps at both ends", func() {
			Expect(p.Prev()).To(BeFalse())
			Expect(p.Next()).To(BeTrue())
			Expect(p.Next()).To(BeTrue())
			Expect(p.Next()).To(BeTrue())
			Expect(p.Next()).To(BeFalse())
			Expect(p.Cursor()).To(Equal(3))
			Expect(p.AtEnd()).To(BeTrue())
			Expect(p.Prev()).To(BeTrue())
			Expect(p.Cursor()).To(Equal(2))
		})

		It("seeks within bounds", func() {
			p.Seek(2)
			Expect(p.Cursor()).To(Equal(2))
			p.Seek(99)
			Expect(p.Cursor()).To(Equal(3))
			p.Seek(-5)
			Expect(p.Cursor()).To(Equal(0))
			p.Last()
			Expect(p.Current().Index).To(Equal(3))
			p.First()
			Expect(p.Current().Index).To(Equal(0))
		})

		It("reset rewinds and pauses", func() {
			p.Seek(2)
			p.Play()
			p.Reset()
			Expect(p.Cursor()).To(Equal(0))
			Expect(p.Playing()).To(BeFalse())
		})
	})

	Describe("ticking", func() {
		It("does nothing while paused", func() {
			Expect(p.Tick()).To(BeFalse())
			Expect(p.Cursor()).To(Equal(0))
		})

		It("advances while playing and pauses on the last step", func() {
			p.Play()
			Expect(p.Tick()).To(BeTrue())
			Expect(p.Tick()).To(BeTrue())
			Expect(p.Tick()).To(BeTrue())
			Expect(p.Cursor()).To(Equal(3))
			Expect(p.Tick()).To(BeFalse())
			Expect(p.Playing()).To(BeFalse())
			Expect(p.Cursor()).To(Equal(3))
		})

		It("wraps when looping", func() {
			p.SetLoop(true)
			p.Seek(3)
			p.Play()
			Expect(p.Cursor()).To(Equal(0), "play from the end restarts")
			p.Seek(3)
			Expect(p.Tick()).To(BeTrue())
			Expect(p.Cursor()).To(Equal(0))
			Expect(p.Playing()).To(BeTrue())
		})

		It("toggles", func() {
			p.Toggle()
			Expect(p.Playing()).To(BeTrue())
			p.Toggle()
			Expect(p.Playing()).To(BeFalse())
		})
	})

	Describe("speed", func() {
		It("halves and doubles within limits", func() {
			Expect(p.Faster()).To(Equal(50 * time.Millisecond))
			Expect(p.Faster()).To(Equal(player.MinInterval))
			Expect(p.Faster()).To(Equal(player.MinInterval))
			for i := 0; i < 10; i++ {
				p.Slower()
			}
			Expect(p.Interval()).To(Equal(player.MaxInterval))
		})

		It("clamps the configured interval", func() {
			q, err := player.New(steps(1), player.WithInterval(time.Nanosecond))
			Expect(err).NotTo(HaveOccurred())
			Expect(q.Interval()).To(Equal(player.MinInterval))
		})
	})

	Describe("autoplay", func() {
		It("visits every step in order and stops at the end", func() {
			q, err := player.New(steps(5), player.WithInterval(player.MinInterval))
			Expect(err).NotTo(HaveOccurred())

			var seen []int
			err = q.Autoplay(context.Background(), func(s trace.Step) {
				seen = append(seen, s.Index)
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(seen).To(Equal([]int{0, 1, 2, 3, 4}))
			Expect(q.Playing()).To(BeFalse())
		})

		It("stops when the context is canceled", func() {
			q, err := player.New(steps(3), player.WithInterval(player.MinInterval), player.WithLoop(true))
			Expect(err).NotTo(HaveOccurred())

			ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
			defer cancel()

			count := 0
			err = q.Autoplay(ctx, func(trace.Step) { count++ })
			Expect(err).To(MatchError(context.DeadlineExceeded))
			Expect(count).To(BeNumerically(">", 3))
			Expect(q.Playing()).To(BeFalse())
		})
	})
})

package trace_test

import (
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoscope/internal/trace"
)

type listState struct {
	Items []int
}

func (s *listState) Clone() trace.State {
	c := &listState{Items: make([]int, len(s.Items))}
	copy(c.Items, s.Items)
	return c
}

func (s *listState) Fields() []trace.Field {
	return []trace.Field{{Name: "len", Value: strconv.Itoa(len(s.Items))}}
}

func (s *listState) Size() int { return len(s.Items) }

func (s *listState) Series() []float64 {
	out := make([]float64, len(s.Items))
	for i, v := range s.Items {
		out[i] = float64(v)
	}
	return out
}

var _ = Describe("Recorder", func() {
	It("assigns indices in temporal order", func() {
		rec := trace.NewRecorder()
		st := &listState{}
		for i := 0; i < 3; i++ {
			st.Items = append(st.Items, i)
			rec.Record(i+1, "push", st)
		}

		h := rec.History()
		Expect(h).To(HaveLen(3))
		for i, f := range h {
			Expect(f.Index).To(Equal(i))
			Expect(f.Line).To(Equal(i + 1))
		}
	})

	It("keeps snapshots immutable when the working state changes", func() {
		rec := trace.NewRecorder()
		st := &listState{Items: []int{1, 2}}
		rec.Record(1, "before", st)

		st.Items[0] = 99
		st.Items = append(st.Items, 3)
		rec.Record(2, "after", st)

		first, ok := rec.History().At(0)
		Expect(ok).To(BeTrue())
		Expect(first.State.(*listState).Items).To(Equal([]int{1, 2}))

		last, _ := rec.History().Last()
		Expect(last.State.(*listState).Items).To(Equal([]int{99, 2, 3}))
	})

	It("drops frames past the limit and reports truncation", func() {
		rec := trace.NewRecorder(trace.WithLimit(2))
		for i := 0; i < 5; i++ {
			rec.Recordf(0, &listState{}, "frame %d", i)
		}
		Expect(rec.Len()).To(Equal(2))
		Expect(rec.Truncated()).To(BeTrue())
	})

	It("marks truncation when a skipped frame is detected through Enabled", func() {
		rec := trace.NewRecorder(trace.WithLimit(1))
		Expect(rec.Enabled()).To(BeTrue())
		rec.Record(1, "kept", &listState{})
		Expect(rec.Truncated()).To(BeFalse())

		Expect(rec.Enabled()).To(BeFalse())
		Expect(rec.Truncated()).To(BeTrue())
		Expect(rec.Len()).To(Equal(1))
	})

	It("is a no-op when nil", func() {
		var rec *trace.Recorder
		Expect(func() { rec.Record(1, "x", &listState{}) }).NotTo(Panic())
		Expect(rec.Enabled()).To(BeFalse())
		Expect(rec.History()).To(BeNil())
		Expect(rec.Len()).To(BeZero())
	})

	It("clears on reset", func() {
		rec := trace.NewRecorder()
		rec.Record(1, "x", &listState{})
		rec.Reset()
		Expect(rec.Len()).To(BeZero())
	})
})

var _ = Describe("Frame", func() {
	It("exposes optional capabilities through its step view", func() {
		f := trace.Frame{Index: 4, Line: 2, Explanation: "x", State: &listState{Items: []int{3, 1}}}
		s := f.Step()
		Expect(s.Index).To(Equal(4))
		Expect(s.Size).To(Equal(2))
		Expect(s.Series).To(Equal([]float64{3, 1}))
		v, ok := s.Field("len")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("2"))
	})

	It("handles frames without state", func() {
		s := trace.Frame{Explanation: "done"}.Step()
		Expect(s.Fields).To(BeEmpty())
		_, ok := s.Field("len")
		Expect(ok).To(BeFalse())
	})
})

package placement_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Norgate-AV/wincenter/internal/desktop"
	"github.com/Norgate-AV/wincenter/internal/logger"
	"github.com/Norgate-AV/wincenter/internal/placement"
	"github.com/Norgate-AV/wincenter/internal/testutil"
	"github.com/Norgate-AV/wincenter/internal/winstate"
)

var _ = Describe("Engine", func() {
	var (
		fake   *testutil.FakeDesktop
		engine *placement.Engine
		slept  []time.Duration
	)

	newEngineOn := func(d *testutil.FakeDesktop) *placement.Engine {
		log := logger.NewNoOpLogger()
		return placement.NewEngine(d, winstate.New(d, log), log,
			placement.WithSleep(func(dur time.Duration) { slept = append(slept, dur) }),
		)
	}

	BeforeEach(func() {
		slept = nil
		fake = testutil.NewFakeDesktop().
			WithMonitor(rectAt(1920, 0, 2560, 1440), rectAt(1920, 0, 2560, 1392)).
			WithWindow(hwnd, "Terminal", "ConsoleWindowClass", rectAt(2000, 100, 1284, 727))
		fake.Window(hwnd).Shadow = desktop.FramePadding{Left: 7, Right: 7, Bottom: 7}
		engine = newEngineOn(fake)
	})

	Describe("CenterOn", func() {
		Context("when the window sits on a secondary monitor", func() {
			It("should center the outer rect in that monitor's work area", func() {
				p, err := engine.CenterOn(hwnd)
				Expect(err).NotTo(HaveOccurred())

				outer := fake.Window(hwnd).Outer
				Expect(p).To(Equal(desktop.Point{X: outer.Left, Y: outer.Top}))
				Expect(outer.Width()).To(Equal(1284))
				Expect(outer.Height()).To(Equal(727))

				left := outer.Left - 1920
				right := 1920 + 2560 - outer.Right
				Expect(left - right).To(BeNumerically("~", 0, 1))
			})

			It("should wait for the move-end delay exactly once", func() {
				_, err := engine.CenterOn(hwnd)
				Expect(err).NotTo(HaveOccurred())
				Expect(slept).To(Equal([]time.Duration{50 * time.Millisecond}))
			})
		})

		Context("when the window has been closed", func() {
			It("should report an invalid handle and not move anything", func() {
				fake.Close(hwnd)

				_, err := engine.CenterOn(hwnd)
				Expect(err).To(MatchError(desktop.ErrHandleInvalid))
				Expect(fake.SetPositionCalls).To(BeEmpty())
				Expect(slept).To(BeEmpty())
			})
		})
	})

	Describe("SnapToCorner", func() {
		DescribeTable("places the visible frame margin pixels from the corner",
			func(corner desktop.Corner, margin int) {
				_, err := engine.SnapToCorner(hwnd, corner, margin)
				Expect(err).NotTo(HaveOccurred())

				frame := fake.Window(hwnd).Frame()
				bounds := rectAt(1920, 0, 2560, 1440)

				if corner.IsRight() {
					Expect(bounds.Right - frame.Right).To(Equal(margin))
				} else {
					Expect(frame.Left - bounds.Left).To(Equal(margin))
				}

				if corner.IsBottom() {
					Expect(bounds.Bottom - frame.Bottom).To(Equal(margin))
				} else {
					Expect(frame.Top - bounds.Top).To(Equal(margin))
				}
			},
			Entry("top-left flush", desktop.TopLeft, 0),
			Entry("top-left with margin", desktop.TopLeft, 16),
			Entry("bottom-left", desktop.BottomLeft, 10),
			Entry("top-right", desktop.TopRight, 10),
			Entry("bottom-right", desktop.BottomRight, 24),
		)

		It("should keep the window size", func() {
			_, err := engine.SnapToCorner(hwnd, desktop.BottomRight, 10)
			Expect(err).NotTo(HaveOccurred())

			Expect(fake.Window(hwnd).Outer.Width()).To(Equal(1284))
			Expect(fake.Window(hwnd).Outer.Height()).To(Equal(727))
		})

		It("should land on the same position when repeated", func() {
			first, err := engine.SnapToCorner(hwnd, desktop.TopRight, 10)
			Expect(err).NotTo(HaveOccurred())

			second, err := engine.SnapToCorner(hwnd, desktop.TopRight, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
		})

		Context("when the frame cannot be measured", func() {
			It("should align the outer rect instead", func() {
				fake.Window(hwnd).FrameErr = desktop.ErrGeometryUnavailable

				p, err := engine.SnapToCorner(hwnd, desktop.TopLeft, 5)
				Expect(err).NotTo(HaveOccurred())
				Expect(p).To(Equal(desktop.Point{X: 1925, Y: 5}))
			})
		})

		Context("when the corner is unknown", func() {
			It("should reject it before touching the window", func() {
				_, err := engine.SnapToCorner(hwnd, desktop.Corner(-1), 0)
				Expect(err).To(MatchError(desktop.ErrInvalidArgument))
				Expect(fake.Events).To(BeEmpty())
			})
		})
	})
})

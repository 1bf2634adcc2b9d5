// Command texdemo drives a surfacetexture.Consumer against an in-memory
// queue.MemQueue fed by a synthetic producer goroutine, printing each
// frame's Dump output and transform matrix as it's acquired.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/surfacetexture"
	"github.com/gogpu/surfacetexture/buffer"
	"github.com/gogpu/surfacetexture/platform"
	"github.com/gogpu/surfacetexture/queue"
)

func main() {
	var (
		width       = flag.Int("width", 256, "synthetic frame width")
		height      = flag.Int("height", 256, "synthetic frame height")
		frames      = flag.Int("frames", 10, "number of frames to produce")
		synchronous = flag.Bool("synchronous", true, "use synchronous (non-dropping) queue mode")
		fenceSync   = flag.Bool("fence-sync", false, "enable GPU read-completion fencing")
	)
	flag.Parse()

	gpu := platform.NewFake()
	q := queue.NewMemQueue(*synchronous)

	var opts []surfacetexture.Option
	if *fenceSync {
		opts = append(opts, surfacetexture.UseFenceSync(true))
	}

	consumer, err := surfacetexture.New(1, platform.TextureTargetExternal, gpu, q, opts...)
	if err != nil {
		log.Fatalf("surfacetexture.New: %v", err)
	}
	consumer.SetName("texdemo")
	defer consumer.Abandon()

	frameReady := make(chan struct{}, max(*frames, 1))
	consumer.SetFrameAvailableListener(listenerFunc(func() {
		select {
		case frameReady <- struct{}{}:
		default:
		}
	}))

	go produceFrames(q, *width, *height, *frames)

	for i := 0; i < *frames; i++ {
		<-frameReady
		if err := consumer.UpdateTexImage(); err != nil {
			log.Fatalf("UpdateTexImage: %v", err)
		}
		log.Printf("frame %d: %s", i, consumer.Dump())
		log.Printf("frame %d: transform = %v", i, consumer.GetTransformMatrix())
	}
}

type listenerFunc func()

func (f listenerFunc) OnFrameAvailable() { f() }

type synthBuffer struct {
	img *image.RGBA
}

func (b *synthBuffer) Width() int  { return b.img.Bounds().Dx() }
func (b *synthBuffer) Height() int { return b.img.Bounds().Dy() }
func (b *synthBuffer) Handle() any { return b.img }

func produceFrames(q *queue.MemQueue, width, height, count int) {
	boxSize := width / 8
	if boxSize < 1 {
		boxSize = 1
	}

	for i := 0; i < count; i++ {
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		fillSolid(img, color.RGBA{R: 20, G: 20, B: 40, A: 255})

		x := (i * boxSize) % width
		drawBox(img, x, height/2-boxSize/2, boxSize, boxSize, color.RGBA{R: 255, G: 140, B: 0, A: 255})
		drawFrameCounter(img, i)

		buf := &synthBuffer{img: img}
		crop := buffer.Rect{Left: 0, Top: 0, Right: width, Bottom: height}
		if _, err := q.QueueBuffer(buf, crop, 0, buffer.ScaleToWindow, time.Now().UnixNano()); err != nil {
			log.Printf("producer: QueueBuffer failed: %v", err)
			return
		}
	}
}

func drawFrameCounter(img *image.RGBA, n int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, 14),
	}
	d.DrawString(fmt.Sprintf("frame %d", n))
}

func fillSolid(img *image.RGBA, c color.RGBA) {
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func drawBox(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	rect := image.Rect(x, y, x+w, y+h).Intersect(img.Bounds())
	draw.Draw(img, rect, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

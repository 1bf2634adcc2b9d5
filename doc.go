// Package surfacetexture implements a consumer-side graphics buffer
// pipeline: it acquires frames from a bounded slot-based buffer queue,
// binds them to a GPU texture, and computes the 4x4 sampling transform a
// downstream renderer needs to correctly crop and orient the bound image.
//
// # Overview
//
// A Consumer connects to a queue.Queue as its sole consumer and drives it
// with UpdateTexImage: acquire the next pending buffer, map it into a GPU
// image via a platform.Platform, bind that image to a texture unit, and
// compute the crop/orientation transform matrix. GetTransformMatrix,
// GetCurrentBuffer, and related accessors expose the result of the most
// recent successful update.
//
// # Quick start
//
//	q := queue.NewMemQueue(false)
//	gpu := platform.NewFake()
//	c, err := surfacetexture.New(platform.TextureName(1), platform.TextureTargetExternal, gpu, q)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer c.Abandon()
//
//	slot, _ := q.QueueBuffer(myBuffer, buffer.Rect{}, 0, buffer.ScaleToWindow, time.Now().UnixNano())
//	_ = slot
//	if err := c.UpdateTexImage(); err != nil {
//		log.Fatal(err)
//	}
//	m := c.GetTransformMatrix()
//
// # Architecture
//
// The library is organized into:
//   - buffer: producer-facing data types (NativeBuffer, Rect, TransformFlags)
//   - queue: the buffer queue contract and an in-memory reference implementation
//   - platform: the GPU capability interface, with a Fake test double and a
//     GPU implementation backed by github.com/gogpu/wgpu
//   - this package: Consumer, the state machine tying the above together
//
// # Non-goals
//
// This package does not draw, composite, or manage a texture atlas; it only
// gets one buffer bound to one texture with a correct sampling transform.
package surfacetexture

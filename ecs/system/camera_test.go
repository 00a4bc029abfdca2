package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gridstep/ecs"
	"github.com/milk9111/gridstep/ecs/component"
)

func TestCameraFollow(t *testing.T) {
	cases := []struct {
		name       string
		follow     bool
		smoothness float64
		want       cp.Vector
	}{
		{name: "static", want: cp.Vector{}},
		{name: "snap", follow: true, want: cp.Vector{X: 125, Y: 75}},
		{name: "eased", follow: true, smoothness: 0.5, want: cp.Vector{X: 62.5, Y: 37.5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tw := newTestWorld(t, cp.Vector{}, 2, 1)
			cam, _ := ecs.Get(tw.w, tw.camera, component.CameraComponent.Kind())
			cam.Follow, cam.Smoothness = tc.follow, tc.smoothness

			NewCameraSystem().Update(tw.w)

			camT, _ := ecs.Get(tw.w, tw.camera, component.TransformComponent.Kind())
			if got := camT.Position(); !near(got, tc.want) {
				t.Fatalf("camera = %v, want %v", got, tc.want)
			}
		})
	}
}

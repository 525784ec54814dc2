package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// InspectResult contains information about the object hit by an inspection ray
type InspectResult struct {
	Hit       bool
	HitRecord *geometry.HitRecord
	Shape     geometry.Shape // The shape that was hit
}

// inspectPixel casts a ray through the centre of pixel (pixelX, pixelY) and
// returns the first object hit
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResult {
	config := sceneObj.SamplingConfig
	u := float64(pixelX) / float64(max(config.Width-1, 1))
	v := float64(pixelY) / float64(max(config.Height()-1, 1))
	ray := sceneObj.Camera.GetRay(u, v)

	hit, isHit := sceneObj.World.Hit(ray, integrator.DefaultTMin, integrator.DefaultTMax)
	if !isHit {
		return InspectResult{Hit: false}
	}

	// The list doesn't report which shape was hit, so find the one at the same t
	for _, shape := range sceneObj.World.Shapes() {
		if shapeHit, shapeIsHit := shape.Hit(ray, integrator.DefaultTMin, hit.T+integrator.DefaultTMin); shapeIsHit && shapeHit.T == hit.T {
			return InspectResult{Hit: true, HitRecord: hit, Shape: shape}
		}
	}

	return InspectResult{Hit: true, HitRecord: hit}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = [3]float64{geom.Center.X, geom.Center.Y, geom.Center.Z}
		properties["radius"] = geom.Radius
		return "sphere", properties
	default:
		return "unknown", properties
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	sceneName := values.Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj, status, err := s.createScene(sceneName)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}
	if err := configureScene(sceneObj, values); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(values.Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(values.Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	width, height := sceneObj.SamplingConfig.Width, sceneObj.SamplingConfig.Height()
	if pixelX < 0 || pixelX >= width || pixelY < 0 || pixelY >= height {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Pixel coordinates out of bounds (%dx%d)", width, height))
		return
	}

	result := inspectPixel(sceneObj, pixelX, pixelY)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	geometryType, geometryProps := extractGeometryInfo(result.Shape)
	hit := result.HitRecord
	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        [3]float64{hit.Point.X, hit.Point.Y, hit.Point.Z},
		Normal:       [3]float64{hit.Normal.X, hit.Normal.Y, hit.Normal.Z},
		Distance:     hit.T,
		FrontFace:    hit.FrontFace,
		Properties:   geometryProps,
	})
}

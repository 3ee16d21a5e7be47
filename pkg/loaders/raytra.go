package loaders

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// raytra scene files are line oriented. Each line starts with a command:
//
//	/ comment
//	m dr dg db sr sg sb shininess ir ig ib    material (ambient = diffuse)
//	s x y z r                                 sphere with current material
//	t ax ay az bx by bz cx cy cz              triangle, CCW winding
//	c x y z vx vy vz d iw ih pw ph            camera (eye, view dir, focal
//	                                          length, image plane w/h in
//	                                          world units, output w/h in px)
//	l p x y z r g b                           point light
//	l a r g b                                 ambient light
type raytraParser struct {
	logger          core.Logger
	currentMaterial *material.PhongMaterial
	surfaces        []core.Surface
	sceneLights     []core.Light
	camera          *renderer.Camera
	imageWidth      int
	imageHeight     int
	cameraCount     int
}

// LoadRaytra loads and parses a raytra scene file
func LoadRaytra(filename string, logger core.Logger) (*scene.Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	return ParseRaytra(file, logger)
}

// ParseRaytra parses raytra scene content from an io.Reader
func ParseRaytra(reader io.Reader, logger core.Logger) (*scene.Scene, error) {
	if logger == nil {
		logger = renderer.NewDefaultLogger()
	}
	p := &raytraParser{logger: logger}

	scanner := bufio.NewScanner(reader)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if err := p.processLine(scanner.Text(), lineNum); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading scene input: %w", err)
	}

	if p.cameraCount != 1 {
		return nil, fmt.Errorf("scene file must contain exactly one camera, got %d", p.cameraCount)
	}

	root := geometry.NewSurfaceList(p.surfaces...)
	return scene.New(root, p.sceneLights, p.camera, p.imageWidth, p.imageHeight)
}

func (p *raytraParser) processLine(line string, lineNum int) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "/") {
		return nil
	}

	fields := strings.Fields(line)
	args := fields[1:]

	switch fields[0] {
	case "m":
		v, err := parseFloats(args, 10, lineNum)
		if err != nil {
			return err
		}
		diffuse := core.NewVec3(v[0], v[1], v[2])
		specular := core.NewVec3(v[3], v[4], v[5])
		mirror := core.NewVec3(v[7], v[8], v[9])
		// The format carries no separate ambient reflectance; it reuses
		// the diffuse color.
		p.currentMaterial = material.NewPhongMaterial(diffuse, diffuse, specular, v[6], mirror)

	case "s":
		if p.currentMaterial == nil {
			return fmt.Errorf("line %d: surface declared before any material", lineNum)
		}
		v, err := parseFloats(args, 4, lineNum)
		if err != nil {
			return err
		}
		p.surfaces = append(p.surfaces,
			geometry.NewSphere(core.NewVec3(v[0], v[1], v[2]), v[3], p.currentMaterial))

	case "t":
		if p.currentMaterial == nil {
			return fmt.Errorf("line %d: surface declared before any material", lineNum)
		}
		v, err := parseFloats(args, 9, lineNum)
		if err != nil {
			return err
		}
		p.surfaces = append(p.surfaces, geometry.NewTriangle(
			core.NewVec3(v[0], v[1], v[2]),
			core.NewVec3(v[3], v[4], v[5]),
			core.NewVec3(v[6], v[7], v[8]),
			p.currentMaterial))

	case "c":
		v, err := parseFloats(args, 11, lineNum)
		if err != nil {
			return err
		}
		if err := p.parseCamera(v, lineNum); err != nil {
			return err
		}

	case "l":
		if len(args) == 0 {
			return fmt.Errorf("line %d: light without a type", lineNum)
		}
		switch args[0] {
		case "p":
			v, err := parseFloats(args[1:], 6, lineNum)
			if err != nil {
				return err
			}
			p.sceneLights = append(p.sceneLights,
				lights.NewPointLight(core.NewVec3(v[0], v[1], v[2]), core.NewVec3(v[3], v[4], v[5])))
		case "a":
			v, err := parseFloats(args[1:], 3, lineNum)
			if err != nil {
				return err
			}
			p.sceneLights = append(p.sceneLights,
				lights.NewAmbientLight(core.NewVec3(v[0], v[1], v[2])))
		}
	}

	// Unknown commands are skipped, matching the scanner's permissiveness
	// for comments and blank directives
	return nil
}

// parseCamera builds the camera from eye position, view direction, focal
// length, viewport size in world units, and output size in pixels
func (p *raytraParser) parseCamera(v []float64, lineNum int) error {
	eye := core.NewVec3(v[0], v[1], v[2])
	viewDir := core.NewVec3(v[3], v[4], v[5]).Normalize()
	focalLength := v[6]
	viewportWidth, viewportHeight := v[7], v[8]
	pixelsWidth, pixelsHeight := v[9], v[10]

	target := eye.Add(viewDir)
	up := core.NewVec3(0, 1, 0)
	if viewDir.Subtract(up).Length() < 1e-9 {
		// View direction parallel to the default up vector; substitute
		up = core.NewVec3(0, 0, 1)
	}

	fovy := 2 * math.Atan2(viewportHeight*0.5, focalLength) * 180 / math.Pi

	viewportAspect := viewportWidth / viewportHeight
	if math.IsNaN(viewportAspect) || math.IsInf(viewportAspect, 0) || viewportAspect <= 0 {
		return fmt.Errorf("line %d: camera has bad viewport aspect ratio %v", lineNum, viewportAspect)
	}
	if viewportAspect > 20000 {
		p.logger.Printf("warning: camera has very large viewport aspect ratio: %v\n", viewportAspect)
	}
	imageAspect := pixelsWidth / pixelsHeight
	if math.Abs(viewportAspect-imageAspect) > 1e-6 {
		p.logger.Printf("warning: viewport aspect ratio %v differs from image aspect ratio %v; "+
			"output width will follow the viewport\n", viewportAspect, imageAspect)
	}

	p.camera = renderer.NewCamera(eye, target, up, fovy, viewportAspect)
	p.imageWidth = int(pixelsWidth)
	p.imageHeight = int(pixelsHeight)
	p.cameraCount++
	return nil
}

// parseFloats parses exactly want float fields
func parseFloats(fields []string, want, lineNum int) ([]float64, error) {
	if len(fields) < want {
		return nil, fmt.Errorf("line %d: expected %d values, got %d", lineNum, want, len(fields))
	}
	values := make([]float64, want)
	for i := 0; i < want; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid number %q: %w", lineNum, fields[i], err)
		}
		values[i] = v
	}
	return values, nil
}

// Package primitives draws scene objects as lit raylib meshes.
package primitives

import (
	"custom-meshes/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	sphereRings    = 16
	sphereSlices   = 16
	cylinderSlices = 16
)

// cached holds the mesh and material for one kind, plus the model-space offset that centers the mesh
// on the object's position.
type cached struct {
	mesh   rl.Mesh
	mtl    rl.Material
	offset [3]float32
}

// Registry maps primitive kinds to mesh+material. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache    map[scene.Kind]*cached
	shader   rl.Shader
	loaded   bool
	viewPos  [3]float32
	lightDir [3]float32
}

// NewRegistry returns an empty registry lit from above-right.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[scene.Kind]*cached),
		lightDir: [3]float32{0.5, 1, 0.5},
	}
}

// SetView sets the camera position for this frame's specular term.
func (r *Registry) SetView(viewPos [3]float32) {
	r.viewPos = viewPos
}

func genMesh(k scene.Kind) (rl.Mesh, [3]float32, bool) {
	switch k {
	case scene.Cube:
		return rl.GenMeshCube(1, 1, 1), [3]float32{}, true
	case scene.Sphere:
		// Radius 0.5 so the diameter matches the cube's side.
		return rl.GenMeshSphere(0.5, sphereRings, sphereSlices), [3]float32{}, true
	case scene.Cylinder:
		// Raylib cylinders sit on Y=0.
		return rl.GenMeshCylinder(0.5, 1, cylinderSlices), [3]float32{0, -0.5, 0}, true
	case scene.Plane:
		return rl.GenMeshPlane(1, 1, 1, 1), [3]float32{}, true
	default:
		return rl.Mesh{}, [3]float32{}, false
	}
}

func (r *Registry) ensure(k scene.Kind) *cached {
	if c, ok := r.cache[k]; ok {
		return c
	}
	mesh, offset, ok := genMesh(k)
	if !ok {
		return nil
	}
	if !r.loaded {
		r.shader = rl.LoadShaderFromMemory(litVS, litFS)
		r.loaded = true
	}
	mtl := rl.LoadMaterialDefault()
	if rl.IsShaderValid(r.shader) {
		mtl.Shader = r.shader
	}
	c := &cached{mesh: mesh, mtl: mtl, offset: offset}
	r.cache[k] = c
	return c
}

// Draw draws o tinted with its color. Must be called between BeginMode3D and EndMode3D.
// Unknown kinds are skipped.
func (r *Registry) Draw(o *scene.Object) {
	c := r.ensure(o.Kind)
	if c == nil {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.NewColor(o.Color.R, o.Color.G, o.Color.B, o.Color.A)
	}
	r.setUniforms(c.mtl.Shader)
	rl.DrawMesh(c.mesh, c.mtl, transform(o.Position, o.Scale, c.offset))
}

// transform centers the mesh, then scales, then moves it to position. A zero scale axis counts as 1.
func transform(position, scale, offset [3]float32) rl.Matrix {
	for i := range scale {
		if scale[i] == 0 {
			scale[i] = 1
		}
	}
	scaleM := rl.MatrixScale(scale[0], scale[1], scale[2])
	transM := rl.MatrixTranslate(position[0], position[1], position[2])
	if offset == [3]float32{} {
		return rl.MatrixMultiply(scaleM, transM)
	}
	offsetM := rl.MatrixTranslate(offset[0], offset[1], offset[2])
	return rl.MatrixMultiply(rl.MatrixMultiply(offsetM, scaleM), transM)
}

// Unload frees the GPU resources. The registry can be reused afterwards.
func (r *Registry) Unload() {
	for k, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, k)
	}
	if r.loaded && rl.IsShaderValid(r.shader) {
		rl.UnloadShader(r.shader)
	}
	r.loaded = false
}

var (
	ambient    = [4]float32{0.2, 0.22, 0.26, 1.0}
	lightColor = [3]float32{1.0, 0.98, 0.95}
)

const (
	lightIntensity   = float32(0.75)
	specularPower    = float32(48.0)
	specularStrength = float32(0.35)
)

// setUniforms copies into local arrays before handing them to cgo.
func (r *Registry) setUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := r.viewPos
	lightDir := r.lightDir
	amb := ambient
	lc := lightColor
	vec3 := map[string][]float32{"viewPos": viewPos[:], "lightDir": lightDir[:], "lightColor": lc[:]}
	for name, v := range vec3 {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			rl.SetShaderValueV(shader, loc, v, rl.ShaderUniformVec3, 1)
		}
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	scalars := map[string]float32{
		"lightIntensity":   lightIntensity,
		"specularPower":    specularPower,
		"specularStrength": specularStrength,
	}
	for name, v := range scalars {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			rl.SetShaderValue(shader, loc, []float32{v}, rl.ShaderUniformFloat)
		}
	}
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = colDiffuse.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * colDiffuse.rgb;
  float spec = pow(max(dot(N, normalize(L + V)), 0.0), specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, colDiffuse.a);
}
`
)

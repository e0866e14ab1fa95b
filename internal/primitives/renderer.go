package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Light is the directional light and the flat ambient term fed to the lit shaders.
// Direction points from the scene towards the light.
type Light struct {
	Direction [3]float32
	Color     [3]float32
	Intensity float32
	Ambient   [3]float32
}

const (
	defaultSpecularPower    = float32(48.0)
	defaultSpecularStrength = float32(0.15)
)

// Renderer owns the sphere mesh, the lit materials, the star backdrop and the environment
// background. GPU resources are created on first use so that they are allocated after the
// window/OpenGL context exists.
type Renderer struct {
	radius   float32
	segments int32
	light    Light
	envLight [3]float32
	viewPos  [3]float32

	sphere      rl.Mesh
	litMtl      rl.Material
	texturedMtl rl.Material
	ready       bool

	backdropMesh   rl.Mesh
	backdropMtl    rl.Material
	backdropLoaded bool

	envMesh   rl.Mesh
	envMtl    rl.Material
	envCamLoc int32
	envLoaded bool
}

// NewRenderer returns a renderer for spheres of the given radius and ring/slice count.
func NewRenderer(radius float32, segments int32, light Light) *Renderer {
	return &Renderer{radius: radius, segments: segments, light: light}
}

// SetView sets the camera position for specular highlights. Call once per frame before drawing.
func (r *Renderer) SetView(viewPos [3]float32) {
	r.viewPos = viewPos
}

// SetEnvironmentLight adds an ambient contribution (e.g. from the HDR panorama) on top of Light.Ambient.
func (r *Renderer) SetEnvironmentLight(ambient [3]float32) {
	r.envLight = ambient
}

// Ambient returns the total ambient term currently applied.
func (r *Renderer) Ambient() [3]float32 {
	a := r.light.Ambient
	return [3]float32{a[0] + r.envLight[0], a[1] + r.envLight[1], a[2] + r.envLight[2]}
}

func (r *Renderer) ensureSphere() {
	if r.ready {
		return
	}
	r.sphere = rl.GenMeshSphere(r.radius, int(r.segments), int(r.segments))
	r.litMtl = rl.LoadMaterialDefault()
	if shader := loadLitShader(); rl.IsShaderValid(shader) {
		r.litMtl.Shader = shader
	}
	r.texturedMtl = rl.LoadMaterialDefault()
	if albedo := r.texturedMtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
	}
	if shader := loadLitTexturedShader(); rl.IsShaderValid(shader) {
		r.texturedMtl.Shader = shader
	}
	r.ready = true
}

// setLitShaderUniforms uploads the camera position and light parameters to a lit shader.
func (r *Renderer) setLitShaderUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	lightDir := [3]float32{r.light.Direction[0], r.light.Direction[1], r.light.Direction[2]}
	amb := r.Ambient()
	lightColor := [3]float32{r.light.Color[0], r.light.Color[1], r.light.Color[2]}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{r.light.Intensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularStrength}, rl.ShaderUniformFloat)
	}
}

// DrawSphere draws one lit sphere with the given model transform. With a valid texture the
// texture is the albedo; otherwise the sphere is drawn in the flat tint color.
// Must be called between BeginMode3D and EndMode3D.
func (r *Renderer) DrawSphere(transform rl.Matrix, tex rl.Texture2D, tint rl.Color) {
	r.ensureSphere()
	if rl.IsTextureValid(tex) {
		rl.SetMaterialTexture(&r.texturedMtl, rl.MapAlbedo, tex)
		r.setLitShaderUniforms(r.texturedMtl.Shader)
		rl.DrawMesh(r.sphere, r.texturedMtl, transform)
		return
	}
	if albedo := r.litMtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	r.setLitShaderUniforms(r.litMtl.Shader)
	rl.DrawMesh(r.sphere, r.litMtl, transform)
}

// LoadBackdrop builds the inside-out star sphere around the origin using tex.
func (r *Renderer) LoadBackdrop(tex rl.Texture2D, radius float32, segments int32) {
	if !rl.IsTextureValid(tex) {
		return
	}
	r.backdropMesh = rl.GenMeshSphere(radius, int(segments), int(segments))
	r.backdropMtl = rl.LoadMaterialDefault()
	rl.SetMaterialTexture(&r.backdropMtl, rl.MapAlbedo, tex)
	r.backdropLoaded = true
}

// DrawBackdrop draws the star sphere unlit, seen from inside.
func (r *Renderer) DrawBackdrop() {
	if !r.backdropLoaded {
		return
	}
	rl.DisableBackfaceCulling()
	rl.DrawMesh(r.backdropMesh, r.backdropMtl, rl.MatrixIdentity())
	rl.EnableBackfaceCulling()
}

// LoadEnvironment sets up the panorama background. tex must be an equirectangular 2:1 image.
func (r *Renderer) LoadEnvironment(tex rl.Texture2D) {
	if !rl.IsTextureValid(tex) {
		return
	}
	shader := loadEquirectShader()
	if !rl.IsShaderValid(shader) {
		return
	}
	r.envMesh = rl.GenMeshCube(1, 1, 1)
	r.envMtl = rl.LoadMaterialDefault()
	r.envMtl.Shader = shader
	rl.SetMaterialTexture(&r.envMtl, rl.MapAlbedo, tex)
	r.envCamLoc = rl.GetShaderLocation(shader, "cameraPosition")
	r.envLoaded = true
}

// environmentScale keeps the background cube well inside the far plane.
const environmentScale = 500

// DrawEnvironment draws the panorama as a large cube centered on the camera, behind everything.
func (r *Renderer) DrawEnvironment(camPos rl.Vector3) {
	if !r.envLoaded {
		return
	}
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	if r.envCamLoc >= 0 {
		pos := []float32{camPos.X, camPos.Y, camPos.Z}
		rl.SetShaderValueV(r.envMtl.Shader, r.envCamLoc, pos, rl.ShaderUniformVec3, 1)
	}
	scale := rl.MatrixScale(environmentScale, environmentScale, environmentScale)
	trans := rl.MatrixTranslate(camPos.X, camPos.Y, camPos.Z)
	rl.DrawMesh(r.envMesh, r.envMtl, rl.MatrixMultiply(scale, trans))
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
}

// Unload releases meshes and shaders. Textures belong to the caller.
func (r *Renderer) Unload() {
	if r.ready {
		rl.UnloadMesh(&r.sphere)
		rl.UnloadShader(r.litMtl.Shader)
		rl.UnloadShader(r.texturedMtl.Shader)
		r.ready = false
	}
	if r.backdropLoaded {
		rl.UnloadMesh(&r.backdropMesh)
		r.backdropLoaded = false
	}
	if r.envLoaded {
		rl.UnloadMesh(&r.envMesh)
		rl.UnloadShader(r.envMtl.Shader)
		r.envLoaded = false
	}
}

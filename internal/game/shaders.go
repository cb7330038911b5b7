package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh vertex shader: position + normal, world transform and view-projection.
const meshVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;

uniform mat4 uViewProj;
uniform mat4 uModel;

out vec3 vWorldPos;
out vec3 vNormal;

void main() {
    vec4 world = uModel * vec4(aPos, 1.0);
    vWorldPos = world.xyz;
    vNormal = mat3(transpose(inverse(uModel))) * aNormal;
    gl_Position = uViewProj * world;
}
` + "\x00"

// Mesh fragment shader: ambient + sun + one point light, exponential fog,
// output encoded to sRGB.
const meshFragSrc = `#version 410 core

uniform vec4 uColor;
uniform vec3 uEmission;
uniform vec3 uAmbient;
uniform vec3 uSunDir;
uniform vec3 uSunColor;
uniform vec3 uLightPos;
uniform vec3 uLightColor;
uniform vec3 uLightAtten;
uniform vec3 uFogColor;
uniform float uFogCoef;
uniform vec3 uEye;
uniform int uUnlit;

in vec3 vWorldPos;
in vec3 vNormal;
out vec4 FragColor;

void main() {
    vec3 base = uColor.rgb;
    vec3 lit = uEmission;
    if (uUnlit == 0) {
        vec3 n = normalize(vNormal);
        lit += uAmbient * base;
        lit += max(dot(n, -uSunDir), 0.0) * uSunColor * base;
        vec3 toLight = uLightPos - vWorldPos;
        float d = length(toLight);
        vec3 l = toLight / max(d, 1e-4);
        float att = 1.0 / (uLightAtten.x + uLightAtten.y * d + uLightAtten.z * d * d);
        lit += max(dot(n, l), 0.0) * uLightColor * base * att;
    }
    float depth = length(vWorldPos - uEye);
    float fog = exp(-uFogCoef * depth);
    vec3 c = mix(uFogColor, lit, fog);
    FragColor = vec4(pow(max(c, vec3(0.0)), vec3(1.0 / 2.2)), uColor.a);
}
` + "\x00"

// Overlay vertex shader: screen-pixel quads with per-vertex UV and color.
const overlayVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;

uniform vec2 uResolution;

out vec2 vUV;
out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

// Overlay fragment shader: atlas alpha times vertex color. Solid shapes
// sample the atlas's white cell.
const overlayFragSrc = `#version 410 core

uniform sampler2D uAtlas;

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    float a = texture(uAtlas, vUV).a;
    if (a * vColor.a < 0.003) discard;
    FragColor = vec4(vColor.rgb, a * vColor.a);
}
` + "\x00"

// shaderStage is one GLSL source and the stage it compiles for.
type shaderStage struct {
	kind uint32
	name string
	src  string
}

func compileShader(st shaderStage) (uint32, error) {
	shader := gl.CreateShader(st.kind)
	csrc, free := gl.Strs(st.src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var ok int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &ok)
	if ok != gl.FALSE {
		return shader, nil
	}
	var n int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
	msg := infoLog(n, func(buf *uint8) { gl.GetShaderInfoLog(shader, n, nil, buf) })
	gl.DeleteShader(shader)
	return 0, fmt.Errorf("compile %s shader: %s", st.name, msg)
}

// linkProgram builds a program from a vertex and fragment source. name only
// labels errors.
func linkProgram(name, vertSrc, fragSrc string) (uint32, error) {
	stages := []shaderStage{
		{gl.VERTEX_SHADER, "vertex", vertSrc},
		{gl.FRAGMENT_SHADER, "fragment", fragSrc},
	}
	shaders := make([]uint32, 0, len(stages))
	defer func() {
		for _, sh := range shaders {
			gl.DeleteShader(sh)
		}
	}()
	for _, st := range stages {
		sh, err := compileShader(st)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", name, err)
		}
		shaders = append(shaders, sh)
	}

	program := gl.CreateProgram()
	for _, sh := range shaders {
		gl.AttachShader(program, sh)
	}
	gl.LinkProgram(program)
	for _, sh := range shaders {
		gl.DetachShader(program, sh)
	}

	var ok int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
		msg := infoLog(n, func(buf *uint8) { gl.GetProgramInfoLog(program, n, nil, buf) })
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link %s program: %s", name, msg)
	}
	return program, nil
}

// infoLog reads a GL info log of length n through fetch.
func infoLog(n int32, fetch func(buf *uint8)) string {
	if n <= 0 {
		return "no log"
	}
	buf := make([]byte, n+1)
	fetch(&buf[0])
	return strings.TrimSpace(strings.TrimRight(string(buf), "\x00"))
}

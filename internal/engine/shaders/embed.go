// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PolygonVertexShader is the vertex shader for polygon rendering.
// It accepts either interleaved vertices in aXYZW or, in streaming mode,
// x in aXYZW.x and y in aY.
//
//go:embed polygon.vert
var PolygonVertexShader string

// PolygonFragmentShader is the fragment shader for polygon rendering.
//
//go:embed polygon.frag
var PolygonFragmentShader string

// CubeVertexShader is the vertex shader for sub-cube rendering.
//
//go:embed cube.vert
var CubeVertexShader string

// CubeFragmentShader is the fragment shader for sub-cube rendering.
//
//go:embed cube.frag
var CubeFragmentShader string

package renderer2d

// Built-in batch shaders. The fragment shader indexes the sampler array
// with a rounded float because dynamically-uniform int indexing is not
// guaranteed on GL 3.2.

const DefaultVertexShader = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec4 aColor;
layout(location=2) in vec2 aUV;
layout(location=3) in float aTexIndex;

uniform mat4 uViewProj;

out vec4 vColor;
out vec2 vUV;
out float vTexIndex;

void main() {
    vColor = aColor;
    vUV = vec2(aUV.x, 1.0 - aUV.y);
    vTexIndex = aTexIndex;
    gl_Position = uViewProj * vec4(aPos, 0.0, 1.0);
}
`

const DefaultFragmentShader = `
#version 330 core
in vec4 vColor;
in vec2 vUV;
in float vTexIndex;

uniform sampler2D uTex[16];

out vec4 FragColor;

void main() {
    int idx = int(vTexIndex + 0.5);
    vec4 texel = texture(uTex[idx], vUV);
    FragColor = texel * vColor;
}
`

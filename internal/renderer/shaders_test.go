package renderer

import (
	"testing"

	"GopherFX/internal/effects"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPlanUniformsOrdersAndAssignsUnits(t *testing.T) {
	params := effects.ParameterTable{
		"WaterTexture": effects.TextureRef{ID: 7},
		"ColorTint":    effects.White,
		"NoiseMap":     effects.TextureRef{ID: 9},
		"WaterLevel":   float32(10),
		"Vector_X":     mgl32.Vec4{1, 2, 3, 0},
		"Bogus":        "not a uniform",
	}
	plan := planUniforms(params, firstParameterUnit)

	wantNames := []string{"ColorTint", "NoiseMap", "Vector_X", "WaterLevel", "WaterTexture"}
	if len(plan) != len(wantNames) {
		t.Fatalf("plan has %d uploads, want %d: %+v", len(plan), len(wantNames), plan)
	}
	for i, name := range wantNames {
		if plan[i].name != name {
			t.Errorf("upload %d = %s, want %s", i, plan[i].name, name)
		}
	}

	if v, ok := plan[0].value.(mgl32.Vec4); !ok || v != (mgl32.Vec4{1, 1, 1, 1}) {
		t.Errorf("color should upload as vec4, got %#v", plan[0].value)
	}
	if plan[1].unit != firstParameterUnit || plan[4].unit != firstParameterUnit+1 {
		t.Errorf("texture units = %d, %d; want %d, %d",
			plan[1].unit, plan[4].unit, firstParameterUnit, firstParameterUnit+1)
	}
}

func TestPlanUniformsReservesBuiltinUnits(t *testing.T) {
	plan := planUniforms(effects.ParameterTable{"PaperTexture": effects.TextureRef{ID: 3}}, firstParameterUnit)
	if len(plan) != 1 {
		t.Fatalf("plan = %+v", plan)
	}
	if plan[0].unit == mainTexUnit || plan[0].unit == depthTexUnit {
		t.Errorf("parameter texture bound to reserved unit %d", plan[0].unit)
	}
}

package systems

import (
	"testing"

	"github.com/automoto/kenney-platformer/components"
	cfg "github.com/automoto/kenney-platformer/config"
	"github.com/yohamta/donburi"
)

func TestUpdateMovement(t *testing.T) {
	step := tick.Seconds() * cfg.Player.VelocityX

	cases := []struct {
		name    string
		actions []cfg.ActionID
		want    float64
	}{
		{"no input", nil, 0},
		{"right", []cfg.ActionID{cfg.ActionMoveRight}, step},
		{"left", []cfg.ActionID{cfg.ActionMoveLeft}, -step},
		{"both cancel", []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, player := spawnTestLevel(t, testLevel(100, 300))
			ctrl := components.Controller.Get(player)
			ctrl.Translation = &components.Vector{X: 99, Y: 7}

			press(e, c.actions...)
			UpdateMovement(e)

			if ctrl.Translation.X != c.want {
				t.Errorf("Expected X %v, got %v", c.want, ctrl.Translation.X)
			}
			if ctrl.Translation.Y != 7 {
				t.Errorf("Expected Y to be kept at 7, got %v", ctrl.Translation.Y)
			}
		})
	}
}

func TestUpdateJumpRequiresGround(t *testing.T) {
	cases := []struct {
		name     string
		grounded bool
		pressed  bool
		wantJump bool
	}{
		{"grounded and pressed", true, true, true},
		{"airborne and pressed", false, true, false},
		{"grounded not pressed", true, false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, player := spawnTestLevel(t, testLevel(100, 300))
			components.ControllerOutput.Get(player).Grounded = c.grounded
			if c.pressed {
				press(e, cfg.ActionJump)
			}

			UpdateJump(e)

			if got := player.HasComponent(components.Jump); got != c.wantJump {
				t.Fatalf("Expected jump %v, got %v", c.wantJump, got)
			}
			queued := countSound(GetOrCreateAudio(e).PendingSFX, cfg.SoundJump)
			if c.wantJump && queued != 1 {
				t.Errorf("Expected one jump sound, got %d", queued)
			}
			if !c.wantJump && queued != 0 {
				t.Errorf("Expected no jump sound, got %d", queued)
			}
		})
	}
}

func TestUpdateJumpKeepsRunningJump(t *testing.T) {
	e, player := spawnTestLevel(t, testLevel(100, 300))
	components.ControllerOutput.Get(player).Grounded = true
	donburi.Add(player, components.Jump, &components.JumpData{Height: 50})

	press(e, cfg.ActionJump)
	UpdateJump(e)

	if h := components.Jump.Get(player).Height; h != 50 {
		t.Errorf("Expected running jump to keep height 50, got %v", h)
	}
}

func TestUpdateRiseClampsToMaxHeight(t *testing.T) {
	e, player := spawnTestLevel(t, testLevel(100, 300))
	donburi.Add(player, components.Jump, &components.JumpData{})
	ctrl := components.Controller.Get(player)

	maxHeight := cfg.Player.MaxJumpHeight
	step := tick.Seconds() * cfg.Player.VelocityY

	steps := 0
	for player.HasComponent(components.Jump) {
		before := components.Jump.Get(player).Height
		UpdateRise(e)
		steps++

		if player.HasComponent(components.Jump) {
			h := components.Jump.Get(player).Height
			if h > maxHeight {
				t.Fatalf("Jump height %v exceeds %v", h, maxHeight)
			}
			if ctrl.Translation.Y != -step {
				t.Fatalf("Expected full rise step %v, got %v", -step, ctrl.Translation.Y)
			}
			continue
		}

		// Last step lands exactly on the top.
		if want := -(maxHeight - before); ctrl.Translation.Y != want {
			t.Errorf("Expected clamped step %v, got %v", want, ctrl.Translation.Y)
		}
	}

	if want := 35; steps != want {
		t.Errorf("Expected %d rise steps, got %d", want, steps)
	}
}

func TestUpdateRiseNearTop(t *testing.T) {
	e, player := spawnTestLevel(t, testLevel(100, 300))
	donburi.Add(player, components.Jump, &components.JumpData{Height: cfg.Player.MaxJumpHeight - 2})

	UpdateRise(e)

	if got := components.Controller.Get(player).Translation.Y; !approx(got, -2) {
		t.Errorf("Expected a 2px rise, got %v", got)
	}
	if player.HasComponent(components.Jump) {
		t.Error("Expected the jump to end at the maximum height")
	}
}

func TestUpdateFallSpeed(t *testing.T) {
	e, player := spawnTestLevel(t, testLevel(100, 300))

	UpdateFall(e)

	fall := components.Controller.Get(player).Translation.Y
	rise := tick.Seconds() * cfg.Player.VelocityY
	if fall <= 0 {
		t.Fatalf("Expected a downward translation, got %v", fall)
	}
	if !approx(rise/fall, cfg.Player.FallDivider) {
		t.Errorf("Expected rise/fall ratio %v, got %v", cfg.Player.FallDivider, rise/fall)
	}
}

func TestUpdateFallSkipsJumpingPlayer(t *testing.T) {
	e, player := spawnTestLevel(t, testLevel(100, 300))
	donburi.Add(player, components.Jump, &components.JumpData{})

	UpdateFall(e)

	if tr := components.Controller.Get(player).Translation; tr != nil && tr.Y != 0 {
		t.Errorf("Expected no fall while jumping, got %v", tr.Y)
	}
}

// The frame a jump reaches its top still rises; the fall starts next frame.
func TestApexFrameDoesNotFall(t *testing.T) {
	e, player := spawnTestLevel(t, testLevel(100, 300))
	donburi.Add(player, components.Jump, &components.JumpData{Height: cfg.Player.MaxJumpHeight - 1})

	UpdateFall(e)
	UpdateRise(e)

	if got := components.Controller.Get(player).Translation.Y; !approx(got, -1) {
		t.Errorf("Expected the apex frame to rise 1px, got %v", got)
	}

	UpdateFall(e)
	UpdateRise(e)

	if got := components.Controller.Get(player).Translation.Y; got <= 0 {
		t.Errorf("Expected the next frame to fall, got %v", got)
	}
}

func countSound(pending []cfg.SoundID, id cfg.SoundID) int {
	n := 0
	for _, s := range pending {
		if s == id {
			n++
		}
	}
	return n
}

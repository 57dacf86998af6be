package training

import "pathly/run-planner/internal/domain"

type exerciseEntry struct {
	name        string
	description string
	seconds     float64
	media       string
}

var warmUps = map[domain.Experience][]exerciseEntry{
	domain.ExperienceBeginner: {
		{"Brisk Walk", "Walk at a comfortable but purposeful pace to raise your heart rate gradually.", 180, "brisk_walk"},
		{"Leg Swings", "Stand upright and swing one leg forward and backward, then side to side. Repeat with the other leg.", 60, "leg_swings"},
		{"Arm Circles", "Extend your arms out to the sides and make small circles, gradually increasing the size.", 60, "arm_circles"},
	},
	domain.ExperienceIntermediate: {
		{"Brisk Walk", "Walk at a quick pace, swinging your arms naturally.", 120, "brisk_walk"},
		{"Walking Lunges", "Step forward into a lunge, keep your front knee over your ankle, then step through with the other leg.", 60, "walking_lunges"},
		{"High Knees", "Jog in place while driving your knees up toward hip height.", 45, "high_knees"},
	},
	domain.ExperienceAdvanced: {
		{"Easy Jog", "Jog lightly at conversational pace to loosen up.", 180, "easy_jog"},
		{"Butt Kicks", "Jog in place and bring your heels up toward your glutes on each stride.", 45, "butt_kicks"},
		{"A-Skips", "Skip forward with an exaggerated knee drive and quick ground contact.", 60, "a_skips"},
	},
}

var coolDowns = map[domain.Experience][]exerciseEntry{
	domain.ExperienceBeginner: {
		{"Slow Walk", "Walk slowly and let your breathing return to normal.", 180, "slow_walk"},
		{"Hamstring Stretch", "Sit on the ground with one leg extended and reach toward your toes. Hold for 30 seconds and switch legs.", 60, "hamstring_stretch"},
		{"Calf Stretch", "Stand facing a wall and place one foot behind you, pressing the heel down. Hold for 30 seconds and switch legs.", 60, "calf_stretch"},
	},
	domain.ExperienceIntermediate: {
		{"Slow Walk", "Walk slowly until your heart rate settles.", 120, "slow_walk"},
		{"Quad Stretch", "Stand on one leg, pull the other heel toward your glutes and hold. Switch legs after 30 seconds.", 60, "quad_stretch"},
		{"Hip Flexor Stretch", "Kneel on one knee and push your hips forward gently. Hold for 30 seconds per side.", 60, "hip_flexor_stretch"},
	},
	domain.ExperienceAdvanced: {
		{"Easy Walk", "Walk at an easy pace to flush the legs.", 120, "easy_walk"},
		{"Pigeon Stretch", "From a plank, bring one knee forward behind the wrist and lower the hips. Hold 30 seconds per side.", 60, "pigeon_stretch"},
		{"Foam Roll Calves", "Roll each calf slowly over a foam roller, pausing on tight spots.", 90, "foam_roll_calves"},
	},
}

// WarmUp returns the fixed warm-up routine for an experience tier. Every
// call returns a fresh slice.
func WarmUp(exp domain.Experience) []domain.Exercise {
	return build(warmUps[tier(exp)])
}

// CoolDown returns the fixed cool-down routine for an experience tier.
func CoolDown(exp domain.Experience) []domain.Exercise {
	return build(coolDowns[tier(exp)])
}

func build(entries []exerciseEntry) []domain.Exercise {
	out := make([]domain.Exercise, 0, len(entries))
	for _, e := range entries {
		media := e.media
		out = append(out, domain.Exercise{
			Name:            e.name,
			Description:     e.description,
			DurationSeconds: e.seconds,
			MediaRef:        &media,
		})
	}
	return out
}

// tier maps values outside the closed set to beginner. Callers validate
// profiles before synthesis, so this only guards the lookups.
func tier(exp domain.Experience) domain.Experience {
	if exp.Valid() {
		return exp
	}
	return domain.ExperienceBeginner
}

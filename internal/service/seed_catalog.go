package service

import "fitlog/gym-tracker/internal/domain"

// seedEntry is one row of the built-in exercise catalog.
type seedEntry struct {
	Name        string
	Category    domain.Category
	MuscleGroup string
}

// seedCatalog is the fixed catalog inserted by ExerciseService.Seed.
// Entries are matched by exact name on re-runs, so renaming one here would
// insert it again rather than update the old row.
var seedCatalog = []seedEntry{
	{Name: "Barbell Bench Press", Category: domain.CategoryChest, MuscleGroup: "Pectorals"},
	{Name: "Incline Dumbbell Press", Category: domain.CategoryChest, MuscleGroup: "Upper Pectorals"},
	{Name: "Dumbbell Flyes", Category: domain.CategoryChest, MuscleGroup: "Pectorals"},
	{Name: "Cable Flyes", Category: domain.CategoryChest, MuscleGroup: "Pectorals"},
	{Name: "Push-ups", Category: domain.CategoryChest, MuscleGroup: "Pectorals"},

	{Name: "Deadlift", Category: domain.CategoryBack, MuscleGroup: "Erector Spinae"},
	{Name: "Pull-ups", Category: domain.CategoryBack, MuscleGroup: "Latissimus Dorsi"},
	{Name: "Barbell Rows", Category: domain.CategoryBack, MuscleGroup: "Latissimus Dorsi"},
	{Name: "Lat Pulldown", Category: domain.CategoryBack, MuscleGroup: "Latissimus Dorsi"},
	{Name: "Seated Cable Rows", Category: domain.CategoryBack, MuscleGroup: "Rhomboids"},
	{Name: "Face Pulls", Category: domain.CategoryBack, MuscleGroup: "Rear Deltoids"},

	{Name: "Barbell Squat", Category: domain.CategoryLegs, MuscleGroup: "Quadriceps"},
	{Name: "Leg Press", Category: domain.CategoryLegs, MuscleGroup: "Quadriceps"},
	{Name: "Romanian Deadlift", Category: domain.CategoryLegs, MuscleGroup: "Hamstrings"},
	{Name: "Lunges", Category: domain.CategoryLegs, MuscleGroup: "Quadriceps"},
	{Name: "Leg Curls", Category: domain.CategoryLegs, MuscleGroup: "Hamstrings"},
	{Name: "Leg Extension", Category: domain.CategoryLegs, MuscleGroup: "Quadriceps"},
	{Name: "Calf Raises", Category: domain.CategoryLegs, MuscleGroup: "Calves"},

	{Name: "Overhead Press", Category: domain.CategoryShoulders, MuscleGroup: "Deltoids"},
	{Name: "Lateral Raises", Category: domain.CategoryShoulders, MuscleGroup: "Lateral Deltoids"},
	{Name: "Front Raises", Category: domain.CategoryShoulders, MuscleGroup: "Anterior Deltoids"},
	{Name: "Rear Delt Flyes", Category: domain.CategoryShoulders, MuscleGroup: "Posterior Deltoids"},
	{Name: "Shrugs", Category: domain.CategoryShoulders, MuscleGroup: "Trapezius"},

	{Name: "Barbell Curl", Category: domain.CategoryArms, MuscleGroup: "Biceps"},
	{Name: "Hammer Curls", Category: domain.CategoryArms, MuscleGroup: "Biceps"},
	{Name: "Tricep Dips", Category: domain.CategoryArms, MuscleGroup: "Triceps"},
	{Name: "Skull Crushers", Category: domain.CategoryArms, MuscleGroup: "Triceps"},
	{Name: "Cable Tricep Pushdown", Category: domain.CategoryArms, MuscleGroup: "Triceps"},
	{Name: "Preacher Curl", Category: domain.CategoryArms, MuscleGroup: "Biceps"},

	{Name: "Plank", Category: domain.CategoryCore, MuscleGroup: "Abdominals"},
	{Name: "Crunches", Category: domain.CategoryCore, MuscleGroup: "Abdominals"},
	{Name: "Leg Raises", Category: domain.CategoryCore, MuscleGroup: "Lower Abdominals"},
	{Name: "Cable Woodchoppers", Category: domain.CategoryCore, MuscleGroup: "Obliques"},
	{Name: "Ab Wheel Rollout", Category: domain.CategoryCore, MuscleGroup: "Abdominals"},

	{Name: "Incline Barbell Bench press", Category: domain.CategoryChest, MuscleGroup: "Upper Pectorals"},
	{Name: "Machine Lateral Raises", Category: domain.CategoryShoulders, MuscleGroup: "Lateral Deltoids"},
	{Name: "Machine Flyes", Category: domain.CategoryChest, MuscleGroup: "Pectorals"},
	{Name: "Machine Overhead Lat Pulls", Category: domain.CategoryBack, MuscleGroup: "Lats"},
	{Name: "Chest Assisted Rows", Category: domain.CategoryBack, MuscleGroup: "Middle Back"},
	{Name: "Hummer Curls", Category: domain.CategoryArms, MuscleGroup: "Biceps"},
	{Name: "Dumbbell Pullovers", Category: domain.CategoryBack, MuscleGroup: "Lats"},
	{Name: "Forearm Overhand Curl", Category: domain.CategoryArms, MuscleGroup: "Forearm"},
	{Name: "Dumbbell Shrugs", Category: domain.CategoryBack, MuscleGroup: "Upper back"},
	{Name: "Machine Chest Assisted Rows", Category: domain.CategoryBack, MuscleGroup: "Back"},
	{Name: "Forearm Curls", Category: domain.CategoryArms, MuscleGroup: "Inner forearm"},
}

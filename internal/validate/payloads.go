package validate

// Composite payload validators collect every violation instead of
// short-circuiting, so the caller can report all problems at once.
// An empty slice means the payload is acceptable.

func SignupPayload(username, email, password string) []string {
	var errs []string
	if ok, msg := String("Username", username, UsernameMinLen, FieldMaxLen); !ok {
		errs = append(errs, msg)
	}
	if email != "" {
		if ok, msg := Email(email); !ok {
			errs = append(errs, msg)
		}
	}
	if ok, msg := Password(password); !ok {
		errs = append(errs, msg)
	}
	return errs
}

func LoginPayload(identifier, password string) []string {
	var errs []string
	if identifier == "" {
		errs = append(errs, "Username or email is required")
	}
	if password == "" {
		errs = append(errs, "Password is required")
	}
	return errs
}

func WorkoutPayload(name, date string) []string {
	var errs []string
	if ok, msg := String("Workout name", name, NameMinLen, NameMaxLen); !ok {
		errs = append(errs, msg)
	}
	if ok, msg := Date("Workout date", date); !ok {
		errs = append(errs, msg)
	}
	return errs
}

func WorkoutItemPayload(sets, reps int, weightLifted *float64) []string {
	var errs []string
	if ok, msg := IntMin("Sets", sets, 1); !ok {
		errs = append(errs, msg)
	}
	if ok, msg := IntMin("Reps", reps, 1); !ok {
		errs = append(errs, msg)
	}
	if weightLifted != nil {
		if ok, msg := NonNegativeFloat("Weight lifted", *weightLifted); !ok {
			errs = append(errs, msg)
		}
	}
	return errs
}

func ExercisePayload(name, muscleGroup string) []string {
	var errs []string
	if ok, msg := String("Exercise name", name, NameMinLen, NameMaxLen); !ok {
		errs = append(errs, msg)
	}
	if ok, msg := String("Muscle group", muscleGroup, NameMinLen, NameMaxLen); !ok {
		errs = append(errs, msg)
	}
	return errs
}

// ProfileUpdatePayload validates only the fields present; both empty is
// rejected because the update would be a no-op.
func ProfileUpdatePayload(username, email string) []string {
	var errs []string
	if username == "" && email == "" {
		return []string{"At least one of username or email is required"}
	}
	if username != "" {
		if ok, msg := String("Username", username, UsernameMinLen, FieldMaxLen); !ok {
			errs = append(errs, msg)
		}
	}
	if email != "" {
		if ok, msg := Email(email); !ok {
			errs = append(errs, msg)
		}
	}
	return errs
}

func PasswordChangePayload(currentPassword, newPassword string) []string {
	var errs []string
	if currentPassword == "" {
		errs = append(errs, "Current password is required")
	}
	if ok, msg := Password(newPassword); !ok {
		errs = append(errs, msg)
	}
	return errs
}

func WaterLogPayload(amountML int) []string {
	var errs []string
	if ok, msg := IntMin("Water amount (ml)", amountML, 1); !ok {
		errs = append(errs, msg)
	}
	return errs
}

func WeightLogPayload(weightKG float64, date string) []string {
	var errs []string
	if ok, msg := PositiveFloat("Weight (kg)", weightKG); !ok {
		errs = append(errs, msg)
	}
	if date != "" {
		if ok, msg := Date("Date", date); !ok {
			errs = append(errs, msg)
		}
	}
	return errs
}

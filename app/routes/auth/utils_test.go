package auth

import "testing"

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !CheckPasswordHash("s3cret-pass", hash) {
		t.Error("correct password should verify")
	}
	if CheckPasswordHash("wrong-pass", hash) {
		t.Error("wrong password should not verify")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", "faculty@college.edu", "Asha", "Rao", []string{"teacher"})
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}

	if claims.UserID != "user-1" || claims.Email != "faculty@college.edu" {
		t.Errorf("claims mismatch: %+v", claims)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "teacher" {
		t.Errorf("roles mismatch: %v", claims.Roles)
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	if _, err := ValidateJWT("not-a-token"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}

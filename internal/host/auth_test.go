package host

import (
	"encoding/json"
	"testing"
	"time"
)

func openTestHost(t *testing.T) *Service {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test host: %v", err)
	}
	return s
}

func register(t *testing.T, s *Service, userName, phone, password string) {
	t.Helper()
	out := s.RegisterUser(`{"userName":"` + userName + `","phoneNumber":"` + phone + `","password":"` + password + `"}`)
	var res struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("Malformed register reply: %v", err)
	}
	if !res.Success {
		t.Fatalf("Register failed: %s", res.Error)
	}
}

func login(t *testing.T, s *Service, phone, password string) string {
	t.Helper()
	var res struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal([]byte(s.Login(phone, password)), &res); err != nil {
		t.Fatalf("Malformed login reply: %v", err)
	}
	if !res.Success {
		t.Fatalf("Login failed: %s", res.Error)
	}
	return res.Token
}

func TestRegisterAndLogin(t *testing.T) {
	s := openTestHost(t)

	register(t, s, "ali", "09120000001", "secret")

	// Duplicate registration must fail
	out := s.RegisterUser(`{"userName":"ali","phoneNumber":"09120000001","password":"other"}`)
	var dup struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal([]byte(out), &dup); err != nil {
		t.Fatalf("Malformed reply: %v", err)
	}
	if dup.Success {
		t.Error("Expected duplicate registration to fail")
	}

	// Wrong password must fail
	var bad struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal([]byte(s.Login("09120000001", "wrong")), &bad); err != nil {
		t.Fatalf("Malformed reply: %v", err)
	}
	if bad.Success {
		t.Error("Expected login with wrong password to fail")
	}

	token := login(t, s, "09120000001", "secret")
	if token == "" {
		t.Fatal("Expected non-empty session token")
	}
}

func TestRegisterValidation(t *testing.T) {
	s := openTestHost(t)

	for _, payload := range []string{
		`not json`,
		`{"userName":"","phoneNumber":"0912","password":"x"}`,
		`{"userName":"u","phoneNumber":"","password":"x"}`,
		`{"userName":"u","phoneNumber":"0912","password":""}`,
	} {
		var res struct {
			Success bool `json:"success"`
		}
		if err := json.Unmarshal([]byte(s.RegisterUser(payload)), &res); err != nil {
			t.Fatalf("Malformed reply for %q: %v", payload, err)
		}
		if res.Success {
			t.Errorf("Expected registration to fail for payload %q", payload)
		}
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestHost(t)
	register(t, s, "ali", "09120000001", "secret")

	// No token before login
	var tok struct {
		Token *string `json:"token"`
	}
	if err := json.Unmarshal([]byte(s.GetSessionToken()), &tok); err != nil {
		t.Fatalf("Malformed reply: %v", err)
	}
	if tok.Token != nil {
		t.Error("Expected null token before login")
	}

	token := login(t, s, "09120000001", "secret")

	if err := json.Unmarshal([]byte(s.GetSessionToken()), &tok); err != nil {
		t.Fatalf("Malformed reply: %v", err)
	}
	if tok.Token == nil || *tok.Token != token {
		t.Error("Expected session token to match login token")
	}

	var userReply struct {
		User *struct {
			UserName string `json:"userName"`
		} `json:"user"`
	}
	if err := json.Unmarshal([]byte(s.GetLatestUser()), &userReply); err != nil {
		t.Fatalf("Malformed reply: %v", err)
	}
	if userReply.User == nil || userReply.User.UserName != "ali" {
		t.Errorf("Expected user ali, got %+v", userReply.User)
	}

	s.Logout()
	if err := json.Unmarshal([]byte(s.GetSessionToken()), &tok); err != nil {
		t.Fatalf("Malformed reply: %v", err)
	}
	if tok.Token != nil {
		t.Error("Expected null token after logout")
	}
	if err := json.Unmarshal([]byte(s.GetLatestUser()), &userReply); err != nil {
		t.Fatalf("Malformed reply: %v", err)
	}
	if userReply.User != nil {
		t.Error("Expected null user after logout")
	}
}

func TestBiometricFlag(t *testing.T) {
	s := openTestHost(t)

	if s.GetBiometricEnabled() != "false" {
		t.Error("Expected biometric disabled by default")
	}
	s.SetBiometricEnabled("true")
	if s.GetBiometricEnabled() != "true" {
		t.Error("Expected biometric enabled after set")
	}
	s.SetBiometricEnabled("garbage")
	if s.GetBiometricEnabled() != "false" {
		t.Error("Expected unknown value to map to false")
	}
}

func TestLoginWithBiometric(t *testing.T) {
	s := openTestHost(t)
	register(t, s, "ali", "09120000001", "secret")

	replies := make(chan string, 1)
	s.SetCallbackSink(func(callbackID, payload string) {
		replies <- payload
	})

	// Disabled: must fail
	s.LoginWithBiometric("cb-1")
	var res struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	select {
	case payload := <-replies:
		if err := json.Unmarshal([]byte(payload), &res); err != nil {
			t.Fatalf("Malformed biometric reply: %v", err)
		}
		if res.Success {
			t.Error("Expected biometric login to fail while disabled")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for biometric reply")
	}

	// Enabled after a prior login: must succeed with a fresh token
	login(t, s, "09120000001", "secret")
	s.SetBiometricEnabled("true")
	s.Logout()

	s.LoginWithBiometric("cb-2")
	select {
	case payload := <-replies:
		if err := json.Unmarshal([]byte(payload), &res); err != nil {
			t.Fatalf("Malformed biometric reply: %v", err)
		}
		if !res.Success || res.Token == "" {
			t.Errorf("Expected successful biometric login, got %+v", res)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for biometric reply")
	}
}

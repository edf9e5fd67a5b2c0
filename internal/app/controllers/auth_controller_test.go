package controllers_test

import (
	"net/http"
	"testing"

	"schoolapi/internal/app/models"
)

func TestLoginEndpoint(t *testing.T) {
	api := newAPITest(t)
	api.createUser("ana@escola.com", "senha-secreta", models.RoleManager)

	recorder := api.request(http.MethodPost, "/sessions", "",
		`{"email":"ana@escola.com","password":"senha-secreta"}`)
	requireStatus(t, recorder, http.StatusOK)

	body := decodeBody(t, recorder)
	token, ok := body["token"].(string)
	if !ok || token == "" {
		t.Fatalf("expected a token in the response, got %v", body)
	}
}

// Unknown email and wrong password must produce byte-identical
// responses so the endpoint cannot be used to probe registered emails.
func TestLoginDoesNotRevealWhichCredentialFailed(t *testing.T) {
	api := newAPITest(t)
	api.createUser("ana@escola.com", "senha-secreta", models.RoleStudent)

	unknownEmail := api.request(http.MethodPost, "/sessions", "",
		`{"email":"ninguem@escola.com","password":"senha-secreta"}`)
	wrongPassword := api.request(http.MethodPost, "/sessions", "",
		`{"email":"ana@escola.com","password":"senha-errada"}`)

	requireStatus(t, unknownEmail, http.StatusBadRequest)
	requireStatus(t, wrongPassword, http.StatusBadRequest)

	if unknownEmail.Body.String() != wrongPassword.Body.String() {
		t.Fatalf("responses differ: %q vs %q", unknownEmail.Body.String(), wrongPassword.Body.String())
	}

	body := decodeBody(t, unknownEmail)
	if body["message"] != "Credenciais inválidas" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestLoginRejectsMalformedPayload(t *testing.T) {
	api := newAPITest(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"senha-secreta"}`},
		{"invalid email", `{"email":"nao-e-email","password":"senha-secreta"}`},
		{"missing password", `{"email":"ana@escola.com"}`},
		{"not json", `email=ana@escola.com`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := api.request(http.MethodPost, "/sessions", "", tc.body)
			requireStatus(t, recorder, http.StatusBadRequest)
		})
	}
}

func TestRegisterEndpoint(t *testing.T) {
	api := newAPITest(t)

	recorder := api.request(http.MethodPost, "/users", "",
		`{"name":"Bruno Lima","email":"bruno@escola.com","password":"senha-nova"}`)
	requireStatus(t, recorder, http.StatusCreated)

	body := decodeBody(t, recorder)
	if body["userId"] == "" || body["userId"] == nil {
		t.Fatalf("expected a userId in the response, got %v", body)
	}

	// The new account can log in right away
	login := api.request(http.MethodPost, "/sessions", "",
		`{"email":"bruno@escola.com","password":"senha-nova"}`)
	requireStatus(t, login, http.StatusOK)
}

func TestRegisterDuplicateEmailEndpoint(t *testing.T) {
	api := newAPITest(t)
	api.createUser("ana@escola.com", "senha-secreta", models.RoleStudent)

	recorder := api.request(http.MethodPost, "/users", "",
		`{"name":"Outra Ana","email":"ana@escola.com","password":"outra-senha"}`)
	requireStatus(t, recorder, http.StatusConflict)

	body := decodeBody(t, recorder)
	if body["message"] != "E-mail já cadastrado" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

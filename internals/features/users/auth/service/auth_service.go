package service

import (
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"taskverse_backend/internals/configs"
	authHelper "taskverse_backend/internals/features/users/auth/helper"
	authRepo "taskverse_backend/internals/features/users/auth/repository"
	userDTO "taskverse_backend/internals/features/users/user/dto"
	userModel "taskverse_backend/internals/features/users/user/model"
	helpers "taskverse_backend/internals/helpers"
)

/* ==========================
   Const & Helpers
========================== */

const accessTTLDefault = 24 * time.Hour

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET não definido")
	}
	return secret, nil
}

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Nome           string `json:"nome"`
		Email          string `json:"email"`
		Login          string `json:"login"`
		Senha          string `json:"senha"`
		ConfirmarSenha string `json:"confirmar_senha"`
		Tipo           string `json:"tipo"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	if err := authHelper.ValidateRegisterInput(input.Nome, input.Email, input.Login, input.Senha, input.ConfirmarSenha); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	input.Nome = strings.TrimSpace(input.Nome)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Login = strings.TrimSpace(input.Login)

	// Pré-checagens de duplicidade com mensagens distintas
	if exists, err := authRepo.ExistsUserByEmail(db, input.Email); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar e-mail")
	} else if exists {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Este e-mail já está cadastrado")
	}
	if exists, err := authRepo.ExistsUserByLogin(db, input.Login); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar login")
	} else if exists {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Este login já está em uso")
	}

	user := userModel.UserModel{
		Nome:  input.Nome,
		Email: input.Email,
		Login: input.Login,
		Senha: input.Senha,
		Tipo:  input.Tipo,
	}
	if err := user.Validate(); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	senhaHash, err := authHelper.HashPassword(input.Senha)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao processar a senha")
	}
	user.Senha = senhaHash

	if err := authRepo.CreateUser(db, &user); err != nil {
		if helpers.IsUniqueViolation(err) {
			// corrida entre a pré-checagem e o insert; o índice único decide
			return helpers.JsonError(c, fiber.StatusBadRequest, "Login ou e-mail já cadastrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar conta")
	}

	return helpers.JsonCreated(c, "Conta criada com sucesso! Faça login para continuar.", nil)
}

/* ==========================
   LOGIN (login + senha)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Login string `json:"login"`
		Senha string `json:"senha"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	input.Login = strings.TrimSpace(input.Login)

	if err := authHelper.ValidateLoginInput(input.Login, input.Senha); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// "usuário não existe" e "senha errada" respondem igual
	user, err := authRepo.FindUserByLogin(db, input.Login)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Credenciais inválidas")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Sua conta foi desativada. Fale com um professor.")
	}
	if err := authHelper.CheckPasswordHash(user.Senha, input.Senha); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Credenciais inválidas")
	}

	return issueToken(c, *user)
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Token do Google inválido")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao decodificar o ID Token")
	}

	// Só autentica contas já cadastradas; o vínculo é pelo e-mail
	user, err := authRepo.FindUserByEmail(db, strings.ToLower(claimSet.Email))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Nenhuma conta com este e-mail. Cadastre-se primeiro.")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Sua conta foi desativada. Fale com um professor.")
	}

	return issueToken(c, *user)
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString, _ := c.Locals("token_string").(string)
	if tokenString == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Token ausente")
	}

	expiredAt := nowUTC().Add(accessTTLDefault)
	if exp, ok := c.Locals("token_exp").(int64); ok {
		expiredAt = time.Unix(exp, 0).UTC()
	}

	if err := authRepo.BlacklistToken(db, tokenString, expiredAt); err != nil {
		if !helpers.IsUniqueViolation(err) {
			log.Printf("[ERROR] Falha ao revogar token: %v", err)
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Erro ao encerrar a sessão")
		}
	}

	clearAuthCookie(c)
	return helpers.JsonOK(c, "Até logo!", nil)
}

/* ==========================
   ISSUE TOKEN + Response
========================== */

func issueToken(c *fiber.Ctx, user userModel.UserModel) error {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := nowUTC()
	claims := jwt.MapClaims{
		"typ":  "access",
		"sub":  user.ID.String(),
		"id":   user.ID.String(),
		"nome": user.Nome,
		"tipo": user.Tipo,
		"iat":  now.Unix(),
		"exp":  now.Add(accessTTLDefault).Unix(),
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar o access token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTLDefault),
	})

	return helpers.JsonOK(c, "Bem-vindo, "+user.Nome+"!", fiber.Map{
		"user":         userDTO.ToUserDTO(user),
		"access_token": accessToken,
	})
}

func clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
	})
}

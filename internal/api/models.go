// Package api defines the transport DTOs of the HTTP surface.
package api

import "time"

// ErrorResponseErrorCode enumerates machine-readable error codes.
type ErrorResponseErrorCode string

const (
	NOTFOUND           ErrorResponseErrorCode = "NOT_FOUND"
	INVALIDARGUMENT    ErrorResponseErrorCode = "INVALID_ARGUMENT"
	EMAILEXISTS        ErrorResponseErrorCode = "EMAIL_EXISTS"
	INVALIDCREDENTIALS ErrorResponseErrorCode = "INVALID_CREDENTIALS"
	ALREADYLEADER      ErrorResponseErrorCode = "ALREADY_LEADER"
	NOGROUP            ErrorResponseErrorCode = "NO_GROUP"
	MAILFAILED         ErrorResponseErrorCode = "MAIL_FAILED"
	UNAVAILABLE        ErrorResponseErrorCode = "UNAVAILABLE"
	INTERNAL           ErrorResponseErrorCode = "INTERNAL"
)

// ErrorResponse is the error envelope returned on every failure.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// LoginRequest is the POST /login body.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginResponse wraps the normalized profile returned on login.
type LoginResponse struct {
	Usuario Profile `json:"usuario"`
}

// Profile is the normalized user-info payload.
type Profile struct {
	ID          *int64 `json:"id"`
	Nome        string `json:"nome"`
	TipoUsuario string `json:"tipoUsuario"`
	IDCelula    *int64 `json:"idCelula"`
}

// RecoveryRequest is the POST /recuperar-senha body.
type RecoveryRequest struct {
	Email string `json:"email"`
}

// Group is a célula row.
type Group struct {
	ID         int64  `json:"id"`
	NomeCelula string `json:"nomeCelula"`
}

// Member is the full member payload; the password hash is never serialized.
type Member struct {
	ID                  int64      `json:"id"`
	NomeCompleto        string     `json:"nomeCompleto"`
	DataNascimento      *time.Time `json:"dataNascimento,omitempty"`
	Email               string     `json:"email"`
	Telefone            string     `json:"telefone"`
	TipoUsuario         string     `json:"tipoUsuario"`
	ParticipaCelula     bool       `json:"participaCelula"`
	IDCelula            *int64     `json:"idCelula"`
	ConcluiuBatismo     bool       `json:"concluiuBatismo"`
	ParticipouCafe      bool       `json:"participouCafe"`
	ParticipaMinisterio bool       `json:"participaMinisterio"`
	NomeMinisterio      *string    `json:"nomeMinisterio,omitempty"`
	CursoMeuNovoCaminho bool       `json:"cursoMeuNovoCaminho"`
	CursoVidaDevocional bool       `json:"cursoVidaDevocional"`
	CursoFamiliaCrista  bool       `json:"cursoFamiliaCrista"`
	CursoVidaProspera   bool       `json:"cursoVidaProspera"`
	NomeCelula          *string    `json:"nomeCelula,omitempty"`
	NomeLider           *string    `json:"nomeLider,omitempty"`
}

// CreateMemberRequest is the POST /usuarios body.
type CreateMemberRequest struct {
	NomeCompleto        string     `json:"nomeCompleto"`
	DataNascimento      *time.Time `json:"dataNascimento"`
	Email               string     `json:"email"`
	Telefone            string     `json:"telefone"`
	Senha               string     `json:"senha"`
	TipoUsuario         string     `json:"tipoUsuario"`
	ParticipaCelula     bool       `json:"participaCelula"`
	IDCelula            *int64     `json:"idCelula"`
	ConcluiuBatismo     bool       `json:"concluiuBatismo"`
	ParticipouCafe      bool       `json:"participouCafe"`
	ParticipaMinisterio bool       `json:"participaMinisterio"`
	NomeMinisterio      *string    `json:"nomeMinisterio"`
	CursoMeuNovoCaminho bool       `json:"cursoMeuNovoCaminho"`
	CursoVidaDevocional bool       `json:"cursoVidaDevocional"`
	CursoFamiliaCrista  bool       `json:"cursoFamiliaCrista"`
	CursoVidaProspera   bool       `json:"cursoVidaProspera"`
}

// UpdateMemberRequest is the PUT /usuarios/:id body; absent fields stay untouched.
type UpdateMemberRequest struct {
	NomeCompleto        *string    `json:"nomeCompleto"`
	DataNascimento      *time.Time `json:"dataNascimento"`
	Email               *string    `json:"email"`
	Telefone            *string    `json:"telefone"`
	Senha               *string    `json:"senha"`
	ParticipaCelula     *bool      `json:"participaCelula"`
	IDCelula            *int64     `json:"idCelula"`
	ConcluiuBatismo     *bool      `json:"concluiuBatismo"`
	ParticipouCafe      *bool      `json:"participouCafe"`
	ParticipaMinisterio *bool      `json:"participaMinisterio"`
	NomeMinisterio      *string    `json:"nomeMinisterio"`
	CursoMeuNovoCaminho *bool      `json:"cursoMeuNovoCaminho"`
	CursoVidaDevocional *bool      `json:"cursoVidaDevocional"`
	CursoFamiliaCrista  *bool      `json:"cursoFamiliaCrista"`
	CursoVidaProspera   *bool      `json:"cursoVidaProspera"`
}

// MessageResponse is the plain confirmation envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse confirms a registration with the generated id.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

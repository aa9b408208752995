// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"casa-do-pai/internal/api"
	"casa-do-pai/internal/entities"
)

// FromAPINewMember builds an entities.NewMember from the registration DTO.
func FromAPINewMember(src api.CreateMemberRequest) entities.NewMember {
	return entities.NewMember{
		FullName:       src.NomeCompleto,
		BirthDate:      src.DataNascimento,
		Email:          src.Email,
		Phone:          src.Telefone,
		Password:       src.Senha,
		Role:           entities.Role(src.TipoUsuario),
		InGroup:        src.ParticipaCelula,
		GroupID:        src.IDCelula,
		Baptized:       src.ConcluiuBatismo,
		AttendedCoffee: src.ParticipouCafe,
		InMinistry:     src.ParticipaMinisterio,
		MinistryName:   src.NomeMinisterio,
		Courses: entities.Courses{
			MeuNovoCaminho: src.CursoMeuNovoCaminho,
			VidaDevocional: src.CursoVidaDevocional,
			FamiliaCrista:  src.CursoFamiliaCrista,
			VidaProspera:   src.CursoVidaProspera,
		},
	}
}

// FromAPIMemberUpdate builds the partial update set from the DTO.
func FromAPIMemberUpdate(src api.UpdateMemberRequest) entities.MemberUpdate {
	return entities.MemberUpdate{
		FullName:       src.NomeCompleto,
		BirthDate:      src.DataNascimento,
		Email:          src.Email,
		Phone:          src.Telefone,
		Password:       src.Senha,
		InGroup:        src.ParticipaCelula,
		GroupID:        src.IDCelula,
		Baptized:       src.ConcluiuBatismo,
		AttendedCoffee: src.ParticipouCafe,
		InMinistry:     src.ParticipaMinisterio,
		MinistryName:   src.NomeMinisterio,
		Courses: entities.CoursesUpdate{
			MeuNovoCaminho: src.CursoMeuNovoCaminho,
			VidaDevocional: src.CursoVidaDevocional,
			FamiliaCrista:  src.CursoFamiliaCrista,
			VidaProspera:   src.CursoVidaProspera,
		},
	}
}

// ToAPIMember maps entities.Member to the transport model, dropping the hash.
func ToAPIMember(m entities.Member) api.Member {
	return api.Member{
		ID:                  m.ID,
		NomeCompleto:        m.FullName,
		DataNascimento:      m.BirthDate,
		Email:               m.Email,
		Telefone:            m.Phone,
		TipoUsuario:         string(m.Role),
		ParticipaCelula:     m.InGroup,
		IDCelula:            m.GroupID,
		ConcluiuBatismo:     m.Baptized,
		ParticipouCafe:      m.AttendedCoffee,
		ParticipaMinisterio: m.InMinistry,
		NomeMinisterio:      m.MinistryName,
		CursoMeuNovoCaminho: m.Courses.MeuNovoCaminho,
		CursoVidaDevocional: m.Courses.VidaDevocional,
		CursoFamiliaCrista:  m.Courses.FamiliaCrista,
		CursoVidaProspera:   m.Courses.VidaProspera,
		NomeCelula:          m.GroupName,
		NomeLider:           m.LeaderName,
	}
}

// ToAPIMemberList maps a slice of members to transport models.
func ToAPIMemberList(list []entities.Member) []api.Member {
	res := make([]api.Member, 0, len(list))
	for _, m := range list {
		res = append(res, ToAPIMember(m))
	}
	return res
}

// ToAPIGroup maps entities.Group to the transport model.
func ToAPIGroup(g entities.Group) api.Group {
	return api.Group{
		ID:         g.ID,
		NomeCelula: g.Name,
	}
}

// ToAPIGroupList maps a slice of groups to transport models.
func ToAPIGroupList(list []entities.Group) []api.Group {
	res := make([]api.Group, 0, len(list))
	for _, g := range list {
		res = append(res, ToAPIGroup(g))
	}
	return res
}

// ToAPIProfile maps the login profile to the transport model.
func ToAPIProfile(p entities.Profile) api.Profile {
	return api.Profile{
		ID:          p.ID,
		Nome:        p.Name,
		TipoUsuario: string(p.Role),
		IDCelula:    p.GroupID,
	}
}

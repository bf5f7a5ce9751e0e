package requestdata

import (
	"context"

	"github.com/google/uuid"

	"github.com/edurealm/projects-backend/internal/domain"
)

// RoleAdmin is the role string granting administrator capabilities.
const RoleAdmin = "admin"

type requestDataKey struct{}

// RequestData carries the authenticated actor through a request context. The
// authentication mechanics that populate it live outside this module.
type RequestData struct {
	UserID uuid.UUID
	Roles  []string
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if rd, ok := ctx.Value(requestDataKey{}).(*RequestData); ok {
		return rd
	}
	return nil
}

// IsAdmin reports whether the actor holds the administrator role.
func (rd *RequestData) IsAdmin() bool {
	if rd == nil {
		return false
	}
	for _, role := range rd.Roles {
		if role == RoleAdmin {
			return true
		}
	}
	return false
}

// IsResponsibleFor reports whether the actor is the project's responsible
// staff member.
func (rd *RequestData) IsResponsibleFor(p *domain.Project) bool {
	if rd == nil || p == nil {
		return false
	}
	return rd.UserID != uuid.Nil && rd.UserID == p.ResponsibleID
}

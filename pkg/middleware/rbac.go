package middleware

import (
	"ZamCare/internal/auth"
	"ZamCare/pkg/apperr"
	"ZamCare/pkg/response"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const rbacModel = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch(r.obj, p.obj) && r.act == p.act`

// rbacPolicies is the role table for every role-restricted route. Objects are
// echo route templates, matched against c.Path(). Admin inherits the
// volunteer rules through the grouping below.
var rbacPolicies = [][]string{
	{auth.RoleVolunteer, "/api/children", "POST"},
	{auth.RoleVolunteer, "/api/children/:id", "PUT"},
	{auth.RoleVolunteer, "/api/children/:id/reports", "POST"},
	{auth.RoleVolunteer, "/api/stories", "POST"},
	{auth.RoleVolunteer, "/api/stories/:id", "PUT"},
	{auth.RoleVolunteer, "/api/upload", "POST"},
	{auth.RoleVolunteer, "/api/analytics/dashboard", "GET"},

	{auth.RoleAdmin, "/api/children/:id", "DELETE"},
	{auth.RoleAdmin, "/api/donations", "GET"},
	{auth.RoleAdmin, "/api/sponsors", "GET"},
	{auth.RoleAdmin, "/api/stories/:id", "DELETE"},
	{auth.RoleAdmin, "/api/tasks", "POST"},
	{auth.RoleAdmin, "/api/tasks/:id", "PUT"},
	{auth.RoleAdmin, "/api/tasks/:id/assign", "POST"},
	{auth.RoleAdmin, "/api/volunteers", "GET"},
	{auth.RoleAdmin, "/api/volunteers/:id", "GET"},
	{auth.RoleAdmin, "/api/volunteers/:id", "PUT"},
	{auth.RoleAdmin, "/api/volunteers/:id/hours", "POST"},
}

// NewEnforcer builds the casbin enforcer with the model and policy table
// defined in code. No policy files are read at runtime.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}
	for _, p := range rbacPolicies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	if _, err := enforcer.AddGroupingPolicy(auth.RoleAdmin, auth.RoleVolunteer); err != nil {
		return nil, err
	}
	return enforcer, nil
}

// RBAC enforces the role table for each request. Must run after JWT.
func RBAC(enforcer *casbin.Enforcer, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := auth.ClaimsFrom(c)
			if !ok {
				return response.Err(c, apperr.New(apperr.Unauthenticated, "Not authorized to access this route"))
			}
			allowed, err := enforcer.Enforce(claims.Role, c.Path(), c.Request().Method)
			if err != nil {
				logger.Error("RBAC enforce failed", zap.Error(err))
				return response.Err(c, err)
			}
			if !allowed {
				return response.Err(c, apperr.Newf(apperr.Forbidden,
					"User role %s is not authorized to access this route", claims.Role))
			}
			return next(c)
		}
	}
}

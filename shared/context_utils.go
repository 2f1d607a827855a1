package shared

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/google/uuid"
	client "github.com/ory/client-go"
)

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

// GetSessionUserID parses the authenticated identity id. Fails for the empty
// no-session sentinel.
func GetSessionUserID(ctx Context) (uuid.UUID, error) {
	userID := GetSession(ctx).GetUserID()
	if userID == "" {
		return uuid.Nil, fmt.Errorf("no authenticated session")
	}
	return uuid.Parse(userID)
}

func GetProject(ctx Context) models.Project {
	return ctx.Get("project").(models.Project)
}

func SetProject(ctx Context, project models.Project) {
	ctx.Set("project", project)
}

func HasProject(ctx Context) bool {
	_, ok := ctx.Get("project").(models.Project)
	return ok
}

func GetMembership(ctx Context) models.UserProject {
	return ctx.Get("membership").(models.UserProject)
}

func SetMembership(ctx Context, membership models.UserProject) {
	ctx.Set("membership", membership)
}

func SetAuthAdminClient(ctx Context, c AdminClient) {
	ctx.Set("authAdminClient", c)
}

func GetAuthAdminClient(ctx Context) AdminClient {
	return ctx.Get("authAdminClient").(AdminClient)
}

func GetParam(ctx Context, param string) string {
	v := ctx.Param(param)
	if v == "" {
		fallback := ctx.Get(param)
		if fallback == nil {
			return ""
		}
		return fallback.(string)
	}
	return SanitizeParam(v)
}

func GetChainID(ctx Context) (int, error) {
	chainID := GetParam(ctx, "chainID")
	if chainID == "" {
		return 0, fmt.Errorf("could not get chain id")
	}
	return strconv.Atoi(chainID)
}

func GetProjectID(ctx Context) (uuid.UUID, error) {
	projectID := GetParam(ctx, "projectID")
	if projectID == "" {
		return uuid.Nil, fmt.Errorf("could not get project id")
	}
	return uuid.Parse(projectID)
}

type adminClientImplementation struct {
	apiClient *client.APIClient
}

func NewAdminClient(client *client.APIClient) AdminClient {
	return adminClientImplementation{
		apiClient: client,
	}
}

func (a adminClientImplementation) GetIdentityFromCookie(ctx context.Context, cookie string) (client.Identity, error) {
	session, _, err := a.apiClient.FrontendAPI.ToSession(ctx).Cookie(cookie).Execute()
	if err != nil {
		return client.Identity{}, fmt.Errorf("could not get identity from cookie: %w", err)
	}
	if session.Identity == nil {
		return client.Identity{}, fmt.Errorf("identity not found in session")
	}
	return *session.Identity, nil
}

func (a adminClientImplementation) GetIdentity(ctx context.Context, userID string) (client.Identity, error) {
	identity, _, err := a.apiClient.IdentityAPI.GetIdentity(ctx, userID).Execute()
	if err != nil {
		return client.Identity{}, err
	}
	return *identity, nil
}

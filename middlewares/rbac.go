package middlewares

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"adhkari/db"
	"adhkari/models"
	"adhkari/utils"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	mongodbadapter "github.com/casbin/mongodb-adapter/v3"
	"github.com/gin-gonic/gin"
)

var enforcer *casbin.Enforcer

const rbacModelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Default policies for the admin role
var defaultPolicies = [][3]string{
	{models.RoleAdmin, "content", "create"},
	{models.RoleAdmin, "content", "delete"},
	{models.RoleAdmin, "user", "read"},
	{models.RoleAdmin, "user", "update"},
	{models.RoleAdmin, "gift", "create"},
	{models.RoleAdmin, "gift", "delete"},
	{models.RoleAdmin, "auditlog", "read"},
}

// InitCasbin initializes the Casbin enforcer with a MongoDB adapter
func InitCasbin(databaseURI string) error {
	adapter, err := mongodbadapter.NewAdapter(databaseURI)
	if err != nil {
		return fmt.Errorf("failed to create Casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModelText)
	if err != nil {
		return fmt.Errorf("failed to create Casbin model: %w", err)
	}

	enforcer, err = casbin.NewEnforcer(m, adapter)
	if err != nil {
		return fmt.Errorf("failed to create Casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to load policy: %w", err)
	}

	ensureDefaultPolicies()
	log.Println("Casbin RBAC initialized")
	return nil
}

// ensureDefaultPolicies seeds missing policies; existing ones are left alone
func ensureDefaultPolicies() {
	for _, policy := range defaultPolicies {
		exists, _ := enforcer.HasPolicy(policy[0], policy[1], policy[2])
		if !exists {
			enforcer.AddPolicy(policy[0], policy[1], policy[2])
		}
	}
	if err := enforcer.SavePolicy(); err != nil {
		log.Printf("Warning: Failed to save policies: %v", err)
	}
}

// AdminAuthMiddleware authenticates admin users before RBAC checks
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			c.Abort()
			return
		}

		claims, err := utils.ParseJWTToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token", "message": err.Error()})
			c.Abort()
			return
		}

		user, err := db.FindUserByEmail(claims.Email)
		if err != nil || user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Set("adminEmail", user.Email)
		c.Set("adminID", user.ID)
		c.Set("adminRole", user.Role)
		c.Next()
	}
}

// RBACMiddleware checks if the admin has permission for the requested action
func RBACMiddleware(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminRole, exists := c.Get("adminRole")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin role not found"})
			c.Abort()
			return
		}

		allowed, err := enforcer.Enforce(adminRole.(string), resource, action)
		if err != nil {
			log.Printf("Casbin enforce error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Permission check failed"})
			c.Abort()
			return
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}

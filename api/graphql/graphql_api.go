package graphql

import (
	"net/http"

	"github.com/graph-gophers/graphql-go"
	"github.com/labstack/echo/v4"

	"product.GO/graphqlserver"
)

// RegisterGraphQLRoutes mounts /graphql and the playground on g.
func RegisterGraphQLRoutes(g *echo.Group, products graphqlserver.ProductGetter) error {
	schema, err := graphqlserver.NewSchema(products)
	if err != nil {
		return err
	}
	RegisterGraphQLRoutesWithSchema(g, schema)
	return nil
}

// RegisterGraphQLRoutesWithSchema registers /graphql with a prebuilt schema.
func RegisterGraphQLRoutesWithSchema(g *echo.Group, schema *graphql.Schema) {
	h := echo.WrapHandler(graphqlserver.Handler(schema))
	g.POST("/graphql", h)
	g.GET("/graphql", h)
	g.GET("/playground", echo.WrapHandler(playgroundHandler()))
}

func playgroundHandler() http.Handler {
	html := `<!DOCTYPE html>
<html>
<head>
	<title>GraphQL Playground</title>
	<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/graphql-playground-react/build/static/css/index.css"/>
</head>
<body>
	<div id="root"/>
	<script src="https://cdn.jsdelivr.net/npm/graphql-playground-react/build/static/js/middleware.js"></script>
	<script>window.addEventListener('load', function() {
		GraphQLPlayground.init({ endpoint: '/graphql' });
	})</script>
</body>
</html>`
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(html))
	})
}

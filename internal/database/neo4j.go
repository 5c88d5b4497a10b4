package database

import (
	"context"
	"fmt"
	"os"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Runner ejecuta una consulta Cypher y devuelve el resultado completo en memoria.
// Los repositorios dependen de esta interfaz para poder probarse sin Neo4j.
type Runner interface {
	Run(ctx context.Context, query string, params map[string]any) (*neo4j.EagerResult, error)
}

type Neo4jDatabase struct {
	Driver neo4j.DriverWithContext
	DBName string
}

func NewNeo4jDatabase(ctx context.Context, uri, username, password, dbName string) (*Neo4jDatabase, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("could not create neo4j driver: %w", err)
	}

	// Verificar conexión
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("failed to verify connection: %w", err)
	}

	return &Neo4jDatabase{Driver: driver, DBName: dbName}, nil
}

func (db *Neo4jDatabase) Close(ctx context.Context) error {
	return db.Driver.Close(ctx)
}

// Run ejecuta la consulta con ExecuteQuery, que maneja sesión y transacción.
func (db *Neo4jDatabase) Run(ctx context.Context, query string, params map[string]any) (*neo4j.EagerResult, error) {
	return neo4j.ExecuteQuery(
		ctx,
		db.Driver,
		query,
		params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(db.DBName),
	)
}

// ExecuteCypherFile ejecuta un archivo .cypher completo
func (db *Neo4jDatabase) ExecuteCypherFile(ctx context.Context, filePath string) error {
	cypher, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("error reading cypher file: %w", err)
	}

	session := db.Driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: db.DBName})
	defer session.Close(ctx)

	_, err = session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		_, err := tx.Run(ctx, string(cypher), nil)
		return nil, err
	})
	return err
}

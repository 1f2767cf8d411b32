// Code generated by ent, DO NOT EDIT.

package ent

import (
	"NovedadesAPI/ent/article"
	"NovedadesAPI/ent/law"
	"NovedadesAPI/ent/legalreference"
	"NovedadesAPI/ent/predicate"
	"NovedadesAPI/ent/report"
	"NovedadesAPI/ent/reportimage"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeArticle        = "Article"
	TypeLaw            = "Law"
	TypeLegalReference = "LegalReference"
	TypeReport         = "Report"
	TypeReportImage    = "ReportImage"
)

// ArticleMutation represents an operation that mutates the Article nodes in the graph.
type ArticleMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	numero        *string
	contenido     *string
	clearedFields map[string]struct{}
	ley           *uuid.UUID
	clearedley    bool
	done          bool
	oldValue      func(context.Context) (*Article, error)
	predicates    []predicate.Article
}

var _ ent.Mutation = (*ArticleMutation)(nil)

// articleOption allows management of the mutation configuration using functional options.
type articleOption func(*ArticleMutation)

// newArticleMutation creates new mutation for the Article entity.
func newArticleMutation(c config, op Op, opts ...articleOption) *ArticleMutation {
	m := &ArticleMutation{
		config:        c,
		op:            op,
		typ:           TypeArticle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArticleID sets the ID field of the mutation.
func withArticleID(id uuid.UUID) articleOption {
	return func(m *ArticleMutation) {
		var (
			err   error
			once  sync.Once
			value *Article
		)
		m.oldValue = func(ctx context.Context) (*Article, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Article.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArticle sets the old Article of the mutation.
func withArticle(node *Article) articleOption {
	return func(m *ArticleMutation) {
		m.oldValue = func(context.Context) (*Article, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArticleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArticleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Article entities.
func (m *ArticleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArticleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArticleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Article.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ArticleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArticleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ArticleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ArticleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ArticleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ArticleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetLeyID sets the "ley_id" field.
func (m *ArticleMutation) SetLeyID(u uuid.UUID) {
	m.ley = &u
}

// LeyID returns the value of the "ley_id" field in the mutation.
func (m *ArticleMutation) LeyID() (r uuid.UUID, exists bool) {
	v := m.ley
	if v == nil {
		return
	}
	return *v, true
}

// OldLeyID returns the old "ley_id" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldLeyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeyID: %w", err)
	}
	return oldValue.LeyID, nil
}

// ResetLeyID resets all changes to the "ley_id" field.
func (m *ArticleMutation) ResetLeyID() {
	m.ley = nil
}

// SetNumero sets the "numero" field.
func (m *ArticleMutation) SetNumero(s string) {
	m.numero = &s
}

// Numero returns the value of the "numero" field in the mutation.
func (m *ArticleMutation) Numero() (r string, exists bool) {
	v := m.numero
	if v == nil {
		return
	}
	return *v, true
}

// OldNumero returns the old "numero" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldNumero(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumero is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumero requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumero: %w", err)
	}
	return oldValue.Numero, nil
}

// ResetNumero resets all changes to the "numero" field.
func (m *ArticleMutation) ResetNumero() {
	m.numero = nil
}

// SetContenido sets the "contenido" field.
func (m *ArticleMutation) SetContenido(s string) {
	m.contenido = &s
}

// Contenido returns the value of the "contenido" field in the mutation.
func (m *ArticleMutation) Contenido() (r string, exists bool) {
	v := m.contenido
	if v == nil {
		return
	}
	return *v, true
}

// OldContenido returns the old "contenido" field's value of the Article entity.
// If the Article object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleMutation) OldContenido(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContenido is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContenido requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContenido: %w", err)
	}
	return oldValue.Contenido, nil
}

// ClearContenido clears the value of the "contenido" field.
func (m *ArticleMutation) ClearContenido() {
	m.contenido = nil
	m.clearedFields[article.FieldContenido] = struct{}{}
}

// ContenidoCleared returns if the "contenido" field was cleared in this mutation.
func (m *ArticleMutation) ContenidoCleared() bool {
	_, ok := m.clearedFields[article.FieldContenido]
	return ok
}

// ResetContenido resets all changes to the "contenido" field.
func (m *ArticleMutation) ResetContenido() {
	m.contenido = nil
	delete(m.clearedFields, article.FieldContenido)
}

// ClearLey clears the "ley" edge to the Law entity.
func (m *ArticleMutation) ClearLey() {
	m.clearedley = true
	m.clearedFields[article.FieldLeyID] = struct{}{}
}

// LeyCleared reports if the "ley" edge to the Law entity was cleared.
func (m *ArticleMutation) LeyCleared() bool {
	return m.clearedley
}

// LeyIDs returns the "ley" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LeyID instead. It exists only for internal usage by the builders.
func (m *ArticleMutation) LeyIDs() (ids []uuid.UUID) {
	if id := m.ley; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLey resets all changes to the "ley" edge.
func (m *ArticleMutation) ResetLey() {
	m.ley = nil
	m.clearedley = false
}

// Where appends a list predicates to the ArticleMutation builder.
func (m *ArticleMutation) Where(ps ...predicate.Article) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArticleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArticleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Article, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArticleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArticleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Article).
func (m *ArticleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArticleMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, article.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, article.FieldUpdatedAt)
	}
	if m.ley != nil {
		fields = append(fields, article.FieldLeyID)
	}
	if m.numero != nil {
		fields = append(fields, article.FieldNumero)
	}
	if m.contenido != nil {
		fields = append(fields, article.FieldContenido)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArticleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case article.FieldCreatedAt:
		return m.CreatedAt()
	case article.FieldUpdatedAt:
		return m.UpdatedAt()
	case article.FieldLeyID:
		return m.LeyID()
	case article.FieldNumero:
		return m.Numero()
	case article.FieldContenido:
		return m.Contenido()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArticleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case article.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case article.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case article.FieldLeyID:
		return m.OldLeyID(ctx)
	case article.FieldNumero:
		return m.OldNumero(ctx)
	case article.FieldContenido:
		return m.OldContenido(ctx)
	}
	return nil, fmt.Errorf("unknown Article field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArticleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case article.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case article.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case article.FieldLeyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeyID(v)
		return nil
	case article.FieldNumero:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumero(v)
		return nil
	case article.FieldContenido:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContenido(v)
		return nil
	}
	return fmt.Errorf("unknown Article field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArticleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArticleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArticleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Article numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArticleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(article.FieldContenido) {
		fields = append(fields, article.FieldContenido)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArticleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArticleMutation) ClearField(name string) error {
	switch name {
	case article.FieldContenido:
		m.ClearContenido()
		return nil
	}
	return fmt.Errorf("unknown Article nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArticleMutation) ResetField(name string) error {
	switch name {
	case article.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case article.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case article.FieldLeyID:
		m.ResetLeyID()
		return nil
	case article.FieldNumero:
		m.ResetNumero()
		return nil
	case article.FieldContenido:
		m.ResetContenido()
		return nil
	}
	return fmt.Errorf("unknown Article field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArticleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.ley != nil {
		edges = append(edges, article.EdgeLey)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArticleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case article.EdgeLey:
		if id := m.ley; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArticleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArticleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArticleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedley {
		edges = append(edges, article.EdgeLey)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArticleMutation) EdgeCleared(name string) bool {
	switch name {
	case article.EdgeLey:
		return m.clearedley
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArticleMutation) ClearEdge(name string) error {
	switch name {
	case article.EdgeLey:
		m.ClearLey()
		return nil
	}
	return fmt.Errorf("unknown Article unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArticleMutation) ResetEdge(name string) error {
	switch name {
	case article.EdgeLey:
		m.ResetLey()
		return nil
	}
	return fmt.Errorf("unknown Article edge %s", name)
}

// LawMutation represents an operation that mutates the Law nodes in the graph.
type LawMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	updated_at       *time.Time
	nombre           *string
	descripcion      *string
	clearedFields    map[string]struct{}
	articulos        map[uuid.UUID]struct{}
	removedarticulos map[uuid.UUID]struct{}
	clearedarticulos bool
	done             bool
	oldValue         func(context.Context) (*Law, error)
	predicates       []predicate.Law
}

var _ ent.Mutation = (*LawMutation)(nil)

// lawOption allows management of the mutation configuration using functional options.
type lawOption func(*LawMutation)

// newLawMutation creates new mutation for the Law entity.
func newLawMutation(c config, op Op, opts ...lawOption) *LawMutation {
	m := &LawMutation{
		config:        c,
		op:            op,
		typ:           TypeLaw,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLawID sets the ID field of the mutation.
func withLawID(id uuid.UUID) lawOption {
	return func(m *LawMutation) {
		var (
			err   error
			once  sync.Once
			value *Law
		)
		m.oldValue = func(ctx context.Context) (*Law, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Law.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLaw sets the old Law of the mutation.
func withLaw(node *Law) lawOption {
	return func(m *LawMutation) {
		m.oldValue = func(context.Context) (*Law, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LawMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LawMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Law entities.
func (m *LawMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LawMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LawMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Law.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *LawMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LawMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Law entity.
// If the Law object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LawMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LawMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LawMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LawMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Law entity.
// If the Law object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LawMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LawMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetNombre sets the "nombre" field.
func (m *LawMutation) SetNombre(s string) {
	m.nombre = &s
}

// Nombre returns the value of the "nombre" field in the mutation.
func (m *LawMutation) Nombre() (r string, exists bool) {
	v := m.nombre
	if v == nil {
		return
	}
	return *v, true
}

// OldNombre returns the old "nombre" field's value of the Law entity.
// If the Law object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LawMutation) OldNombre(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNombre is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNombre requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNombre: %w", err)
	}
	return oldValue.Nombre, nil
}

// ResetNombre resets all changes to the "nombre" field.
func (m *LawMutation) ResetNombre() {
	m.nombre = nil
}

// SetDescripcion sets the "descripcion" field.
func (m *LawMutation) SetDescripcion(s string) {
	m.descripcion = &s
}

// Descripcion returns the value of the "descripcion" field in the mutation.
func (m *LawMutation) Descripcion() (r string, exists bool) {
	v := m.descripcion
	if v == nil {
		return
	}
	return *v, true
}

// OldDescripcion returns the old "descripcion" field's value of the Law entity.
// If the Law object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LawMutation) OldDescripcion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescripcion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescripcion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescripcion: %w", err)
	}
	return oldValue.Descripcion, nil
}

// ClearDescripcion clears the value of the "descripcion" field.
func (m *LawMutation) ClearDescripcion() {
	m.descripcion = nil
	m.clearedFields[law.FieldDescripcion] = struct{}{}
}

// DescripcionCleared returns if the "descripcion" field was cleared in this mutation.
func (m *LawMutation) DescripcionCleared() bool {
	_, ok := m.clearedFields[law.FieldDescripcion]
	return ok
}

// ResetDescripcion resets all changes to the "descripcion" field.
func (m *LawMutation) ResetDescripcion() {
	m.descripcion = nil
	delete(m.clearedFields, law.FieldDescripcion)
}

// AddArticuloIDs adds the "articulos" edge to the Article entity by ids.
func (m *LawMutation) AddArticuloIDs(ids ...uuid.UUID) {
	if m.articulos == nil {
		m.articulos = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.articulos[ids[i]] = struct{}{}
	}
}

// ClearArticulos clears the "articulos" edge to the Article entity.
func (m *LawMutation) ClearArticulos() {
	m.clearedarticulos = true
}

// ArticulosCleared reports if the "articulos" edge to the Article entity was cleared.
func (m *LawMutation) ArticulosCleared() bool {
	return m.clearedarticulos
}

// RemoveArticuloIDs removes the "articulos" edge to the Article entity by IDs.
func (m *LawMutation) RemoveArticuloIDs(ids ...uuid.UUID) {
	if m.removedarticulos == nil {
		m.removedarticulos = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.articulos, ids[i])
		m.removedarticulos[ids[i]] = struct{}{}
	}
}

// RemovedArticulos returns the removed IDs of the "articulos" edge to the Article entity.
func (m *LawMutation) RemovedArticulosIDs() (ids []uuid.UUID) {
	for id := range m.removedarticulos {
		ids = append(ids, id)
	}
	return
}

// ArticulosIDs returns the "articulos" edge IDs in the mutation.
func (m *LawMutation) ArticulosIDs() (ids []uuid.UUID) {
	for id := range m.articulos {
		ids = append(ids, id)
	}
	return
}

// ResetArticulos resets all changes to the "articulos" edge.
func (m *LawMutation) ResetArticulos() {
	m.articulos = nil
	m.clearedarticulos = false
	m.removedarticulos = nil
}

// Where appends a list predicates to the LawMutation builder.
func (m *LawMutation) Where(ps ...predicate.Law) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LawMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LawMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Law, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LawMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LawMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Law).
func (m *LawMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LawMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, law.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, law.FieldUpdatedAt)
	}
	if m.nombre != nil {
		fields = append(fields, law.FieldNombre)
	}
	if m.descripcion != nil {
		fields = append(fields, law.FieldDescripcion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LawMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case law.FieldCreatedAt:
		return m.CreatedAt()
	case law.FieldUpdatedAt:
		return m.UpdatedAt()
	case law.FieldNombre:
		return m.Nombre()
	case law.FieldDescripcion:
		return m.Descripcion()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LawMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case law.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case law.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case law.FieldNombre:
		return m.OldNombre(ctx)
	case law.FieldDescripcion:
		return m.OldDescripcion(ctx)
	}
	return nil, fmt.Errorf("unknown Law field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LawMutation) SetField(name string, value ent.Value) error {
	switch name {
	case law.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case law.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case law.FieldNombre:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNombre(v)
		return nil
	case law.FieldDescripcion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescripcion(v)
		return nil
	}
	return fmt.Errorf("unknown Law field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LawMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LawMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LawMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Law numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LawMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(law.FieldDescripcion) {
		fields = append(fields, law.FieldDescripcion)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LawMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LawMutation) ClearField(name string) error {
	switch name {
	case law.FieldDescripcion:
		m.ClearDescripcion()
		return nil
	}
	return fmt.Errorf("unknown Law nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LawMutation) ResetField(name string) error {
	switch name {
	case law.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case law.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case law.FieldNombre:
		m.ResetNombre()
		return nil
	case law.FieldDescripcion:
		m.ResetDescripcion()
		return nil
	}
	return fmt.Errorf("unknown Law field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LawMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.articulos != nil {
		edges = append(edges, law.EdgeArticulos)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LawMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case law.EdgeArticulos:
		ids := make([]ent.Value, 0, len(m.articulos))
		for id := range m.articulos {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LawMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedarticulos != nil {
		edges = append(edges, law.EdgeArticulos)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LawMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case law.EdgeArticulos:
		ids := make([]ent.Value, 0, len(m.removedarticulos))
		for id := range m.removedarticulos {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LawMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedarticulos {
		edges = append(edges, law.EdgeArticulos)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LawMutation) EdgeCleared(name string) bool {
	switch name {
	case law.EdgeArticulos:
		return m.clearedarticulos
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LawMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Law unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LawMutation) ResetEdge(name string) error {
	switch name {
	case law.EdgeArticulos:
		m.ResetArticulos()
		return nil
	}
	return fmt.Errorf("unknown Law edge %s", name)
}

// LegalReferenceMutation represents an operation that mutates the LegalReference nodes in the graph.
type LegalReferenceMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	report          *uuid.UUID
	clearedreport   bool
	ley             *uuid.UUID
	clearedley      bool
	articulo        *uuid.UUID
	clearedarticulo bool
	done            bool
	oldValue        func(context.Context) (*LegalReference, error)
	predicates      []predicate.LegalReference
}

var _ ent.Mutation = (*LegalReferenceMutation)(nil)

// legalreferenceOption allows management of the mutation configuration using functional options.
type legalreferenceOption func(*LegalReferenceMutation)

// newLegalReferenceMutation creates new mutation for the LegalReference entity.
func newLegalReferenceMutation(c config, op Op, opts ...legalreferenceOption) *LegalReferenceMutation {
	m := &LegalReferenceMutation{
		config:        c,
		op:            op,
		typ:           TypeLegalReference,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLegalReferenceID sets the ID field of the mutation.
func withLegalReferenceID(id uuid.UUID) legalreferenceOption {
	return func(m *LegalReferenceMutation) {
		var (
			err   error
			once  sync.Once
			value *LegalReference
		)
		m.oldValue = func(ctx context.Context) (*LegalReference, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LegalReference.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLegalReference sets the old LegalReference of the mutation.
func withLegalReference(node *LegalReference) legalreferenceOption {
	return func(m *LegalReferenceMutation) {
		m.oldValue = func(context.Context) (*LegalReference, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LegalReferenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LegalReferenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LegalReference entities.
func (m *LegalReferenceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LegalReferenceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LegalReferenceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LegalReference.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *LegalReferenceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LegalReferenceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LegalReference entity.
// If the LegalReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegalReferenceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LegalReferenceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LegalReferenceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LegalReferenceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LegalReference entity.
// If the LegalReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegalReferenceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LegalReferenceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetReportID sets the "report_id" field.
func (m *LegalReferenceMutation) SetReportID(u uuid.UUID) {
	m.report = &u
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *LegalReferenceMutation) ReportID() (r uuid.UUID, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the LegalReference entity.
// If the LegalReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegalReferenceMutation) OldReportID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *LegalReferenceMutation) ResetReportID() {
	m.report = nil
}

// SetLeyID sets the "ley_id" field.
func (m *LegalReferenceMutation) SetLeyID(u uuid.UUID) {
	m.ley = &u
}

// LeyID returns the value of the "ley_id" field in the mutation.
func (m *LegalReferenceMutation) LeyID() (r uuid.UUID, exists bool) {
	v := m.ley
	if v == nil {
		return
	}
	return *v, true
}

// OldLeyID returns the old "ley_id" field's value of the LegalReference entity.
// If the LegalReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegalReferenceMutation) OldLeyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeyID: %w", err)
	}
	return oldValue.LeyID, nil
}

// ResetLeyID resets all changes to the "ley_id" field.
func (m *LegalReferenceMutation) ResetLeyID() {
	m.ley = nil
}

// SetArticuloID sets the "articulo_id" field.
func (m *LegalReferenceMutation) SetArticuloID(u uuid.UUID) {
	m.articulo = &u
}

// ArticuloID returns the value of the "articulo_id" field in the mutation.
func (m *LegalReferenceMutation) ArticuloID() (r uuid.UUID, exists bool) {
	v := m.articulo
	if v == nil {
		return
	}
	return *v, true
}

// OldArticuloID returns the old "articulo_id" field's value of the LegalReference entity.
// If the LegalReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegalReferenceMutation) OldArticuloID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticuloID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticuloID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticuloID: %w", err)
	}
	return oldValue.ArticuloID, nil
}

// ClearArticuloID clears the value of the "articulo_id" field.
func (m *LegalReferenceMutation) ClearArticuloID() {
	m.articulo = nil
	m.clearedFields[legalreference.FieldArticuloID] = struct{}{}
}

// ArticuloIDCleared returns if the "articulo_id" field was cleared in this mutation.
func (m *LegalReferenceMutation) ArticuloIDCleared() bool {
	_, ok := m.clearedFields[legalreference.FieldArticuloID]
	return ok
}

// ResetArticuloID resets all changes to the "articulo_id" field.
func (m *LegalReferenceMutation) ResetArticuloID() {
	m.articulo = nil
	delete(m.clearedFields, legalreference.FieldArticuloID)
}

// ClearReport clears the "report" edge to the Report entity.
func (m *LegalReferenceMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[legalreference.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *LegalReferenceMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *LegalReferenceMutation) ReportIDs() (ids []uuid.UUID) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *LegalReferenceMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// ClearLey clears the "ley" edge to the Law entity.
func (m *LegalReferenceMutation) ClearLey() {
	m.clearedley = true
	m.clearedFields[legalreference.FieldLeyID] = struct{}{}
}

// LeyCleared reports if the "ley" edge to the Law entity was cleared.
func (m *LegalReferenceMutation) LeyCleared() bool {
	return m.clearedley
}

// LeyIDs returns the "ley" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LeyID instead. It exists only for internal usage by the builders.
func (m *LegalReferenceMutation) LeyIDs() (ids []uuid.UUID) {
	if id := m.ley; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLey resets all changes to the "ley" edge.
func (m *LegalReferenceMutation) ResetLey() {
	m.ley = nil
	m.clearedley = false
}

// ClearArticulo clears the "articulo" edge to the Article entity.
func (m *LegalReferenceMutation) ClearArticulo() {
	m.clearedarticulo = true
	m.clearedFields[legalreference.FieldArticuloID] = struct{}{}
}

// ArticuloCleared reports if the "articulo" edge to the Article entity was cleared.
func (m *LegalReferenceMutation) ArticuloCleared() bool {
	return m.ArticuloIDCleared() || m.clearedarticulo
}

// ArticuloIDs returns the "articulo" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ArticuloID instead. It exists only for internal usage by the builders.
func (m *LegalReferenceMutation) ArticuloIDs() (ids []uuid.UUID) {
	if id := m.articulo; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetArticulo resets all changes to the "articulo" edge.
func (m *LegalReferenceMutation) ResetArticulo() {
	m.articulo = nil
	m.clearedarticulo = false
}

// Where appends a list predicates to the LegalReferenceMutation builder.
func (m *LegalReferenceMutation) Where(ps ...predicate.LegalReference) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LegalReferenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LegalReferenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LegalReference, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LegalReferenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LegalReferenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LegalReference).
func (m *LegalReferenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LegalReferenceMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, legalreference.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, legalreference.FieldUpdatedAt)
	}
	if m.report != nil {
		fields = append(fields, legalreference.FieldReportID)
	}
	if m.ley != nil {
		fields = append(fields, legalreference.FieldLeyID)
	}
	if m.articulo != nil {
		fields = append(fields, legalreference.FieldArticuloID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LegalReferenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case legalreference.FieldCreatedAt:
		return m.CreatedAt()
	case legalreference.FieldUpdatedAt:
		return m.UpdatedAt()
	case legalreference.FieldReportID:
		return m.ReportID()
	case legalreference.FieldLeyID:
		return m.LeyID()
	case legalreference.FieldArticuloID:
		return m.ArticuloID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LegalReferenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case legalreference.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case legalreference.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case legalreference.FieldReportID:
		return m.OldReportID(ctx)
	case legalreference.FieldLeyID:
		return m.OldLeyID(ctx)
	case legalreference.FieldArticuloID:
		return m.OldArticuloID(ctx)
	}
	return nil, fmt.Errorf("unknown LegalReference field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LegalReferenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case legalreference.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case legalreference.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case legalreference.FieldReportID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case legalreference.FieldLeyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeyID(v)
		return nil
	case legalreference.FieldArticuloID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticuloID(v)
		return nil
	}
	return fmt.Errorf("unknown LegalReference field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LegalReferenceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LegalReferenceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LegalReferenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LegalReference numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LegalReferenceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(legalreference.FieldArticuloID) {
		fields = append(fields, legalreference.FieldArticuloID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LegalReferenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LegalReferenceMutation) ClearField(name string) error {
	switch name {
	case legalreference.FieldArticuloID:
		m.ClearArticuloID()
		return nil
	}
	return fmt.Errorf("unknown LegalReference nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LegalReferenceMutation) ResetField(name string) error {
	switch name {
	case legalreference.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case legalreference.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case legalreference.FieldReportID:
		m.ResetReportID()
		return nil
	case legalreference.FieldLeyID:
		m.ResetLeyID()
		return nil
	case legalreference.FieldArticuloID:
		m.ResetArticuloID()
		return nil
	}
	return fmt.Errorf("unknown LegalReference field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LegalReferenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.report != nil {
		edges = append(edges, legalreference.EdgeReport)
	}
	if m.ley != nil {
		edges = append(edges, legalreference.EdgeLey)
	}
	if m.articulo != nil {
		edges = append(edges, legalreference.EdgeArticulo)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LegalReferenceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case legalreference.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	case legalreference.EdgeLey:
		if id := m.ley; id != nil {
			return []ent.Value{*id}
		}
	case legalreference.EdgeArticulo:
		if id := m.articulo; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LegalReferenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LegalReferenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LegalReferenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedreport {
		edges = append(edges, legalreference.EdgeReport)
	}
	if m.clearedley {
		edges = append(edges, legalreference.EdgeLey)
	}
	if m.clearedarticulo {
		edges = append(edges, legalreference.EdgeArticulo)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LegalReferenceMutation) EdgeCleared(name string) bool {
	switch name {
	case legalreference.EdgeReport:
		return m.clearedreport
	case legalreference.EdgeLey:
		return m.clearedley
	case legalreference.EdgeArticulo:
		return m.clearedarticulo
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LegalReferenceMutation) ClearEdge(name string) error {
	switch name {
	case legalreference.EdgeReport:
		m.ClearReport()
		return nil
	case legalreference.EdgeLey:
		m.ClearLey()
		return nil
	case legalreference.EdgeArticulo:
		m.ClearArticulo()
		return nil
	}
	return fmt.Errorf("unknown LegalReference unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LegalReferenceMutation) ResetEdge(name string) error {
	switch name {
	case legalreference.EdgeReport:
		m.ResetReport()
		return nil
	case legalreference.EdgeLey:
		m.ResetLey()
		return nil
	case legalreference.EdgeArticulo:
		m.ResetArticulo()
		return nil
	}
	return fmt.Errorf("unknown LegalReference edge %s", name)
}

// ReportMutation represents an operation that mutates the Report nodes in the graph.
type ReportMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	usuario_id         *string
	zona               *string
	distrito           *string
	circuito           *string
	direccion          *string
	horario_jornada    *string
	hora_reporte       *string
	fecha              *string
	novedad            *string
	parte_informante   *string
	tipo               *report.Tipo
	estado             *report.Estado
	ubicacion          *string
	documento_pdf      *string
	documento_docx     *string
	version            *int
	addversion         *int
	clearedFields      map[string]struct{}
	imagenes           map[uuid.UUID]struct{}
	removedimagenes    map[uuid.UUID]struct{}
	clearedimagenes    bool
	referencias        map[uuid.UUID]struct{}
	removedreferencias map[uuid.UUID]struct{}
	clearedreferencias bool
	done               bool
	oldValue           func(context.Context) (*Report, error)
	predicates         []predicate.Report
}

var _ ent.Mutation = (*ReportMutation)(nil)

// reportOption allows management of the mutation configuration using functional options.
type reportOption func(*ReportMutation)

// newReportMutation creates new mutation for the Report entity.
func newReportMutation(c config, op Op, opts ...reportOption) *ReportMutation {
	m := &ReportMutation{
		config:        c,
		op:            op,
		typ:           TypeReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportID sets the ID field of the mutation.
func withReportID(id uuid.UUID) reportOption {
	return func(m *ReportMutation) {
		var (
			err   error
			once  sync.Once
			value *Report
		)
		m.oldValue = func(ctx context.Context) (*Report, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Report.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReport sets the old Report of the mutation.
func withReport(node *Report) reportOption {
	return func(m *ReportMutation) {
		m.oldValue = func(context.Context) (*Report, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Report entities.
func (m *ReportMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Report.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReportMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReportMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReportMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUsuarioID sets the "usuario_id" field.
func (m *ReportMutation) SetUsuarioID(s string) {
	m.usuario_id = &s
}

// UsuarioID returns the value of the "usuario_id" field in the mutation.
func (m *ReportMutation) UsuarioID() (r string, exists bool) {
	v := m.usuario_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUsuarioID returns the old "usuario_id" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldUsuarioID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsuarioID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsuarioID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsuarioID: %w", err)
	}
	return oldValue.UsuarioID, nil
}

// ClearUsuarioID clears the value of the "usuario_id" field.
func (m *ReportMutation) ClearUsuarioID() {
	m.usuario_id = nil
	m.clearedFields[report.FieldUsuarioID] = struct{}{}
}

// UsuarioIDCleared returns if the "usuario_id" field was cleared in this mutation.
func (m *ReportMutation) UsuarioIDCleared() bool {
	_, ok := m.clearedFields[report.FieldUsuarioID]
	return ok
}

// ResetUsuarioID resets all changes to the "usuario_id" field.
func (m *ReportMutation) ResetUsuarioID() {
	m.usuario_id = nil
	delete(m.clearedFields, report.FieldUsuarioID)
}

// SetZona sets the "zona" field.
func (m *ReportMutation) SetZona(s string) {
	m.zona = &s
}

// Zona returns the value of the "zona" field in the mutation.
func (m *ReportMutation) Zona() (r string, exists bool) {
	v := m.zona
	if v == nil {
		return
	}
	return *v, true
}

// OldZona returns the old "zona" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldZona(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZona is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZona requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZona: %w", err)
	}
	return oldValue.Zona, nil
}

// ResetZona resets all changes to the "zona" field.
func (m *ReportMutation) ResetZona() {
	m.zona = nil
}

// SetDistrito sets the "distrito" field.
func (m *ReportMutation) SetDistrito(s string) {
	m.distrito = &s
}

// Distrito returns the value of the "distrito" field in the mutation.
func (m *ReportMutation) Distrito() (r string, exists bool) {
	v := m.distrito
	if v == nil {
		return
	}
	return *v, true
}

// OldDistrito returns the old "distrito" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldDistrito(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistrito is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistrito requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistrito: %w", err)
	}
	return oldValue.Distrito, nil
}

// ResetDistrito resets all changes to the "distrito" field.
func (m *ReportMutation) ResetDistrito() {
	m.distrito = nil
}

// SetCircuito sets the "circuito" field.
func (m *ReportMutation) SetCircuito(s string) {
	m.circuito = &s
}

// Circuito returns the value of the "circuito" field in the mutation.
func (m *ReportMutation) Circuito() (r string, exists bool) {
	v := m.circuito
	if v == nil {
		return
	}
	return *v, true
}

// OldCircuito returns the old "circuito" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCircuito(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCircuito is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCircuito requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCircuito: %w", err)
	}
	return oldValue.Circuito, nil
}

// ResetCircuito resets all changes to the "circuito" field.
func (m *ReportMutation) ResetCircuito() {
	m.circuito = nil
}

// SetDireccion sets the "direccion" field.
func (m *ReportMutation) SetDireccion(s string) {
	m.direccion = &s
}

// Direccion returns the value of the "direccion" field in the mutation.
func (m *ReportMutation) Direccion() (r string, exists bool) {
	v := m.direccion
	if v == nil {
		return
	}
	return *v, true
}

// OldDireccion returns the old "direccion" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldDireccion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDireccion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDireccion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDireccion: %w", err)
	}
	return oldValue.Direccion, nil
}

// ResetDireccion resets all changes to the "direccion" field.
func (m *ReportMutation) ResetDireccion() {
	m.direccion = nil
}

// SetHorarioJornada sets the "horario_jornada" field.
func (m *ReportMutation) SetHorarioJornada(s string) {
	m.horario_jornada = &s
}

// HorarioJornada returns the value of the "horario_jornada" field in the mutation.
func (m *ReportMutation) HorarioJornada() (r string, exists bool) {
	v := m.horario_jornada
	if v == nil {
		return
	}
	return *v, true
}

// OldHorarioJornada returns the old "horario_jornada" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldHorarioJornada(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHorarioJornada is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHorarioJornada requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHorarioJornada: %w", err)
	}
	return oldValue.HorarioJornada, nil
}

// ResetHorarioJornada resets all changes to the "horario_jornada" field.
func (m *ReportMutation) ResetHorarioJornada() {
	m.horario_jornada = nil
}

// SetHoraReporte sets the "hora_reporte" field.
func (m *ReportMutation) SetHoraReporte(s string) {
	m.hora_reporte = &s
}

// HoraReporte returns the value of the "hora_reporte" field in the mutation.
func (m *ReportMutation) HoraReporte() (r string, exists bool) {
	v := m.hora_reporte
	if v == nil {
		return
	}
	return *v, true
}

// OldHoraReporte returns the old "hora_reporte" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldHoraReporte(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHoraReporte is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHoraReporte requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHoraReporte: %w", err)
	}
	return oldValue.HoraReporte, nil
}

// ResetHoraReporte resets all changes to the "hora_reporte" field.
func (m *ReportMutation) ResetHoraReporte() {
	m.hora_reporte = nil
}

// SetFecha sets the "fecha" field.
func (m *ReportMutation) SetFecha(s string) {
	m.fecha = &s
}

// Fecha returns the value of the "fecha" field in the mutation.
func (m *ReportMutation) Fecha() (r string, exists bool) {
	v := m.fecha
	if v == nil {
		return
	}
	return *v, true
}

// OldFecha returns the old "fecha" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldFecha(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFecha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFecha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFecha: %w", err)
	}
	return oldValue.Fecha, nil
}

// ResetFecha resets all changes to the "fecha" field.
func (m *ReportMutation) ResetFecha() {
	m.fecha = nil
}

// SetNovedad sets the "novedad" field.
func (m *ReportMutation) SetNovedad(s string) {
	m.novedad = &s
}

// Novedad returns the value of the "novedad" field in the mutation.
func (m *ReportMutation) Novedad() (r string, exists bool) {
	v := m.novedad
	if v == nil {
		return
	}
	return *v, true
}

// OldNovedad returns the old "novedad" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldNovedad(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNovedad is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNovedad requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNovedad: %w", err)
	}
	return oldValue.Novedad, nil
}

// ResetNovedad resets all changes to the "novedad" field.
func (m *ReportMutation) ResetNovedad() {
	m.novedad = nil
}

// SetParteInformante sets the "parte_informante" field.
func (m *ReportMutation) SetParteInformante(s string) {
	m.parte_informante = &s
}

// ParteInformante returns the value of the "parte_informante" field in the mutation.
func (m *ReportMutation) ParteInformante() (r string, exists bool) {
	v := m.parte_informante
	if v == nil {
		return
	}
	return *v, true
}

// OldParteInformante returns the old "parte_informante" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldParteInformante(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParteInformante is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParteInformante requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParteInformante: %w", err)
	}
	return oldValue.ParteInformante, nil
}

// ClearParteInformante clears the value of the "parte_informante" field.
func (m *ReportMutation) ClearParteInformante() {
	m.parte_informante = nil
	m.clearedFields[report.FieldParteInformante] = struct{}{}
}

// ParteInformanteCleared returns if the "parte_informante" field was cleared in this mutation.
func (m *ReportMutation) ParteInformanteCleared() bool {
	_, ok := m.clearedFields[report.FieldParteInformante]
	return ok
}

// ResetParteInformante resets all changes to the "parte_informante" field.
func (m *ReportMutation) ResetParteInformante() {
	m.parte_informante = nil
	delete(m.clearedFields, report.FieldParteInformante)
}

// SetTipo sets the "tipo" field.
func (m *ReportMutation) SetTipo(r report.Tipo) {
	m.tipo = &r
}

// Tipo returns the value of the "tipo" field in the mutation.
func (m *ReportMutation) Tipo() (r report.Tipo, exists bool) {
	v := m.tipo
	if v == nil {
		return
	}
	return *v, true
}

// OldTipo returns the old "tipo" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldTipo(ctx context.Context) (v report.Tipo, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTipo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTipo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTipo: %w", err)
	}
	return oldValue.Tipo, nil
}

// ResetTipo resets all changes to the "tipo" field.
func (m *ReportMutation) ResetTipo() {
	m.tipo = nil
}

// SetEstado sets the "estado" field.
func (m *ReportMutation) SetEstado(r report.Estado) {
	m.estado = &r
}

// Estado returns the value of the "estado" field in the mutation.
func (m *ReportMutation) Estado() (r report.Estado, exists bool) {
	v := m.estado
	if v == nil {
		return
	}
	return *v, true
}

// OldEstado returns the old "estado" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldEstado(ctx context.Context) (v report.Estado, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstado is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstado requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstado: %w", err)
	}
	return oldValue.Estado, nil
}

// ResetEstado resets all changes to the "estado" field.
func (m *ReportMutation) ResetEstado() {
	m.estado = nil
}

// SetUbicacion sets the "ubicacion" field.
func (m *ReportMutation) SetUbicacion(s string) {
	m.ubicacion = &s
}

// Ubicacion returns the value of the "ubicacion" field in the mutation.
func (m *ReportMutation) Ubicacion() (r string, exists bool) {
	v := m.ubicacion
	if v == nil {
		return
	}
	return *v, true
}

// OldUbicacion returns the old "ubicacion" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldUbicacion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUbicacion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUbicacion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUbicacion: %w", err)
	}
	return oldValue.Ubicacion, nil
}

// ClearUbicacion clears the value of the "ubicacion" field.
func (m *ReportMutation) ClearUbicacion() {
	m.ubicacion = nil
	m.clearedFields[report.FieldUbicacion] = struct{}{}
}

// UbicacionCleared returns if the "ubicacion" field was cleared in this mutation.
func (m *ReportMutation) UbicacionCleared() bool {
	_, ok := m.clearedFields[report.FieldUbicacion]
	return ok
}

// ResetUbicacion resets all changes to the "ubicacion" field.
func (m *ReportMutation) ResetUbicacion() {
	m.ubicacion = nil
	delete(m.clearedFields, report.FieldUbicacion)
}

// SetDocumentoPdf sets the "documento_pdf" field.
func (m *ReportMutation) SetDocumentoPdf(s string) {
	m.documento_pdf = &s
}

// DocumentoPdf returns the value of the "documento_pdf" field in the mutation.
func (m *ReportMutation) DocumentoPdf() (r string, exists bool) {
	v := m.documento_pdf
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentoPdf returns the old "documento_pdf" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldDocumentoPdf(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentoPdf is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentoPdf requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentoPdf: %w", err)
	}
	return oldValue.DocumentoPdf, nil
}

// ClearDocumentoPdf clears the value of the "documento_pdf" field.
func (m *ReportMutation) ClearDocumentoPdf() {
	m.documento_pdf = nil
	m.clearedFields[report.FieldDocumentoPdf] = struct{}{}
}

// DocumentoPdfCleared returns if the "documento_pdf" field was cleared in this mutation.
func (m *ReportMutation) DocumentoPdfCleared() bool {
	_, ok := m.clearedFields[report.FieldDocumentoPdf]
	return ok
}

// ResetDocumentoPdf resets all changes to the "documento_pdf" field.
func (m *ReportMutation) ResetDocumentoPdf() {
	m.documento_pdf = nil
	delete(m.clearedFields, report.FieldDocumentoPdf)
}

// SetDocumentoDocx sets the "documento_docx" field.
func (m *ReportMutation) SetDocumentoDocx(s string) {
	m.documento_docx = &s
}

// DocumentoDocx returns the value of the "documento_docx" field in the mutation.
func (m *ReportMutation) DocumentoDocx() (r string, exists bool) {
	v := m.documento_docx
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentoDocx returns the old "documento_docx" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldDocumentoDocx(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentoDocx is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentoDocx requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentoDocx: %w", err)
	}
	return oldValue.DocumentoDocx, nil
}

// ClearDocumentoDocx clears the value of the "documento_docx" field.
func (m *ReportMutation) ClearDocumentoDocx() {
	m.documento_docx = nil
	m.clearedFields[report.FieldDocumentoDocx] = struct{}{}
}

// DocumentoDocxCleared returns if the "documento_docx" field was cleared in this mutation.
func (m *ReportMutation) DocumentoDocxCleared() bool {
	_, ok := m.clearedFields[report.FieldDocumentoDocx]
	return ok
}

// ResetDocumentoDocx resets all changes to the "documento_docx" field.
func (m *ReportMutation) ResetDocumentoDocx() {
	m.documento_docx = nil
	delete(m.clearedFields, report.FieldDocumentoDocx)
}

// SetVersion sets the "version" field.
func (m *ReportMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ReportMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ReportMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ReportMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ReportMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// AddImageneIDs adds the "imagenes" edge to the ReportImage entity by ids.
func (m *ReportMutation) AddImageneIDs(ids ...uuid.UUID) {
	if m.imagenes == nil {
		m.imagenes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.imagenes[ids[i]] = struct{}{}
	}
}

// ClearImagenes clears the "imagenes" edge to the ReportImage entity.
func (m *ReportMutation) ClearImagenes() {
	m.clearedimagenes = true
}

// ImagenesCleared reports if the "imagenes" edge to the ReportImage entity was cleared.
func (m *ReportMutation) ImagenesCleared() bool {
	return m.clearedimagenes
}

// RemoveImageneIDs removes the "imagenes" edge to the ReportImage entity by IDs.
func (m *ReportMutation) RemoveImageneIDs(ids ...uuid.UUID) {
	if m.removedimagenes == nil {
		m.removedimagenes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.imagenes, ids[i])
		m.removedimagenes[ids[i]] = struct{}{}
	}
}

// RemovedImagenes returns the removed IDs of the "imagenes" edge to the ReportImage entity.
func (m *ReportMutation) RemovedImagenesIDs() (ids []uuid.UUID) {
	for id := range m.removedimagenes {
		ids = append(ids, id)
	}
	return
}

// ImagenesIDs returns the "imagenes" edge IDs in the mutation.
func (m *ReportMutation) ImagenesIDs() (ids []uuid.UUID) {
	for id := range m.imagenes {
		ids = append(ids, id)
	}
	return
}

// ResetImagenes resets all changes to the "imagenes" edge.
func (m *ReportMutation) ResetImagenes() {
	m.imagenes = nil
	m.clearedimagenes = false
	m.removedimagenes = nil
}

// AddReferenciaIDs adds the "referencias" edge to the LegalReference entity by ids.
func (m *ReportMutation) AddReferenciaIDs(ids ...uuid.UUID) {
	if m.referencias == nil {
		m.referencias = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.referencias[ids[i]] = struct{}{}
	}
}

// ClearReferencias clears the "referencias" edge to the LegalReference entity.
func (m *ReportMutation) ClearReferencias() {
	m.clearedreferencias = true
}

// ReferenciasCleared reports if the "referencias" edge to the LegalReference entity was cleared.
func (m *ReportMutation) ReferenciasCleared() bool {
	return m.clearedreferencias
}

// RemoveReferenciaIDs removes the "referencias" edge to the LegalReference entity by IDs.
func (m *ReportMutation) RemoveReferenciaIDs(ids ...uuid.UUID) {
	if m.removedreferencias == nil {
		m.removedreferencias = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.referencias, ids[i])
		m.removedreferencias[ids[i]] = struct{}{}
	}
}

// RemovedReferencias returns the removed IDs of the "referencias" edge to the LegalReference entity.
func (m *ReportMutation) RemovedReferenciasIDs() (ids []uuid.UUID) {
	for id := range m.removedreferencias {
		ids = append(ids, id)
	}
	return
}

// ReferenciasIDs returns the "referencias" edge IDs in the mutation.
func (m *ReportMutation) ReferenciasIDs() (ids []uuid.UUID) {
	for id := range m.referencias {
		ids = append(ids, id)
	}
	return
}

// ResetReferencias resets all changes to the "referencias" edge.
func (m *ReportMutation) ResetReferencias() {
	m.referencias = nil
	m.clearedreferencias = false
	m.removedreferencias = nil
}

// Where appends a list predicates to the ReportMutation builder.
func (m *ReportMutation) Where(ps ...predicate.Report) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Report, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Report).
func (m *ReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.created_at != nil {
		fields = append(fields, report.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, report.FieldUpdatedAt)
	}
	if m.usuario_id != nil {
		fields = append(fields, report.FieldUsuarioID)
	}
	if m.zona != nil {
		fields = append(fields, report.FieldZona)
	}
	if m.distrito != nil {
		fields = append(fields, report.FieldDistrito)
	}
	if m.circuito != nil {
		fields = append(fields, report.FieldCircuito)
	}
	if m.direccion != nil {
		fields = append(fields, report.FieldDireccion)
	}
	if m.horario_jornada != nil {
		fields = append(fields, report.FieldHorarioJornada)
	}
	if m.hora_reporte != nil {
		fields = append(fields, report.FieldHoraReporte)
	}
	if m.fecha != nil {
		fields = append(fields, report.FieldFecha)
	}
	if m.novedad != nil {
		fields = append(fields, report.FieldNovedad)
	}
	if m.parte_informante != nil {
		fields = append(fields, report.FieldParteInformante)
	}
	if m.tipo != nil {
		fields = append(fields, report.FieldTipo)
	}
	if m.estado != nil {
		fields = append(fields, report.FieldEstado)
	}
	if m.ubicacion != nil {
		fields = append(fields, report.FieldUbicacion)
	}
	if m.documento_pdf != nil {
		fields = append(fields, report.FieldDocumentoPdf)
	}
	if m.documento_docx != nil {
		fields = append(fields, report.FieldDocumentoDocx)
	}
	if m.version != nil {
		fields = append(fields, report.FieldVersion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case report.FieldCreatedAt:
		return m.CreatedAt()
	case report.FieldUpdatedAt:
		return m.UpdatedAt()
	case report.FieldUsuarioID:
		return m.UsuarioID()
	case report.FieldZona:
		return m.Zona()
	case report.FieldDistrito:
		return m.Distrito()
	case report.FieldCircuito:
		return m.Circuito()
	case report.FieldDireccion:
		return m.Direccion()
	case report.FieldHorarioJornada:
		return m.HorarioJornada()
	case report.FieldHoraReporte:
		return m.HoraReporte()
	case report.FieldFecha:
		return m.Fecha()
	case report.FieldNovedad:
		return m.Novedad()
	case report.FieldParteInformante:
		return m.ParteInformante()
	case report.FieldTipo:
		return m.Tipo()
	case report.FieldEstado:
		return m.Estado()
	case report.FieldUbicacion:
		return m.Ubicacion()
	case report.FieldDocumentoPdf:
		return m.DocumentoPdf()
	case report.FieldDocumentoDocx:
		return m.DocumentoDocx()
	case report.FieldVersion:
		return m.Version()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case report.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case report.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case report.FieldUsuarioID:
		return m.OldUsuarioID(ctx)
	case report.FieldZona:
		return m.OldZona(ctx)
	case report.FieldDistrito:
		return m.OldDistrito(ctx)
	case report.FieldCircuito:
		return m.OldCircuito(ctx)
	case report.FieldDireccion:
		return m.OldDireccion(ctx)
	case report.FieldHorarioJornada:
		return m.OldHorarioJornada(ctx)
	case report.FieldHoraReporte:
		return m.OldHoraReporte(ctx)
	case report.FieldFecha:
		return m.OldFecha(ctx)
	case report.FieldNovedad:
		return m.OldNovedad(ctx)
	case report.FieldParteInformante:
		return m.OldParteInformante(ctx)
	case report.FieldTipo:
		return m.OldTipo(ctx)
	case report.FieldEstado:
		return m.OldEstado(ctx)
	case report.FieldUbicacion:
		return m.OldUbicacion(ctx)
	case report.FieldDocumentoPdf:
		return m.OldDocumentoPdf(ctx)
	case report.FieldDocumentoDocx:
		return m.OldDocumentoDocx(ctx)
	case report.FieldVersion:
		return m.OldVersion(ctx)
	}
	return nil, fmt.Errorf("unknown Report field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case report.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case report.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case report.FieldUsuarioID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsuarioID(v)
		return nil
	case report.FieldZona:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZona(v)
		return nil
	case report.FieldDistrito:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistrito(v)
		return nil
	case report.FieldCircuito:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCircuito(v)
		return nil
	case report.FieldDireccion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDireccion(v)
		return nil
	case report.FieldHorarioJornada:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHorarioJornada(v)
		return nil
	case report.FieldHoraReporte:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHoraReporte(v)
		return nil
	case report.FieldFecha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFecha(v)
		return nil
	case report.FieldNovedad:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNovedad(v)
		return nil
	case report.FieldParteInformante:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParteInformante(v)
		return nil
	case report.FieldTipo:
		v, ok := value.(report.Tipo)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTipo(v)
		return nil
	case report.FieldEstado:
		v, ok := value.(report.Estado)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstado(v)
		return nil
	case report.FieldUbicacion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUbicacion(v)
		return nil
	case report.FieldDocumentoPdf:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentoPdf(v)
		return nil
	case report.FieldDocumentoDocx:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentoDocx(v)
		return nil
	case report.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, report.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case report.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	case report.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Report numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(report.FieldUsuarioID) {
		fields = append(fields, report.FieldUsuarioID)
	}
	if m.FieldCleared(report.FieldParteInformante) {
		fields = append(fields, report.FieldParteInformante)
	}
	if m.FieldCleared(report.FieldUbicacion) {
		fields = append(fields, report.FieldUbicacion)
	}
	if m.FieldCleared(report.FieldDocumentoPdf) {
		fields = append(fields, report.FieldDocumentoPdf)
	}
	if m.FieldCleared(report.FieldDocumentoDocx) {
		fields = append(fields, report.FieldDocumentoDocx)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportMutation) ClearField(name string) error {
	switch name {
	case report.FieldUsuarioID:
		m.ClearUsuarioID()
		return nil
	case report.FieldParteInformante:
		m.ClearParteInformante()
		return nil
	case report.FieldUbicacion:
		m.ClearUbicacion()
		return nil
	case report.FieldDocumentoPdf:
		m.ClearDocumentoPdf()
		return nil
	case report.FieldDocumentoDocx:
		m.ClearDocumentoDocx()
		return nil
	}
	return fmt.Errorf("unknown Report nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportMutation) ResetField(name string) error {
	switch name {
	case report.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case report.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case report.FieldUsuarioID:
		m.ResetUsuarioID()
		return nil
	case report.FieldZona:
		m.ResetZona()
		return nil
	case report.FieldDistrito:
		m.ResetDistrito()
		return nil
	case report.FieldCircuito:
		m.ResetCircuito()
		return nil
	case report.FieldDireccion:
		m.ResetDireccion()
		return nil
	case report.FieldHorarioJornada:
		m.ResetHorarioJornada()
		return nil
	case report.FieldHoraReporte:
		m.ResetHoraReporte()
		return nil
	case report.FieldFecha:
		m.ResetFecha()
		return nil
	case report.FieldNovedad:
		m.ResetNovedad()
		return nil
	case report.FieldParteInformante:
		m.ResetParteInformante()
		return nil
	case report.FieldTipo:
		m.ResetTipo()
		return nil
	case report.FieldEstado:
		m.ResetEstado()
		return nil
	case report.FieldUbicacion:
		m.ResetUbicacion()
		return nil
	case report.FieldDocumentoPdf:
		m.ResetDocumentoPdf()
		return nil
	case report.FieldDocumentoDocx:
		m.ResetDocumentoDocx()
		return nil
	case report.FieldVersion:
		m.ResetVersion()
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.imagenes != nil {
		edges = append(edges, report.EdgeImagenes)
	}
	if m.referencias != nil {
		edges = append(edges, report.EdgeReferencias)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeImagenes:
		ids := make([]ent.Value, 0, len(m.imagenes))
		for id := range m.imagenes {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeReferencias:
		ids := make([]ent.Value, 0, len(m.referencias))
		for id := range m.referencias {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedimagenes != nil {
		edges = append(edges, report.EdgeImagenes)
	}
	if m.removedreferencias != nil {
		edges = append(edges, report.EdgeReferencias)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeImagenes:
		ids := make([]ent.Value, 0, len(m.removedimagenes))
		for id := range m.removedimagenes {
			ids = append(ids, id)
		}
		return ids
	case report.EdgeReferencias:
		ids := make([]ent.Value, 0, len(m.removedreferencias))
		for id := range m.removedreferencias {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedimagenes {
		edges = append(edges, report.EdgeImagenes)
	}
	if m.clearedreferencias {
		edges = append(edges, report.EdgeReferencias)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportMutation) EdgeCleared(name string) bool {
	switch name {
	case report.EdgeImagenes:
		return m.clearedimagenes
	case report.EdgeReferencias:
		return m.clearedreferencias
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Report unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportMutation) ResetEdge(name string) error {
	switch name {
	case report.EdgeImagenes:
		m.ResetImagenes()
		return nil
	case report.EdgeReferencias:
		m.ResetReferencias()
		return nil
	}
	return fmt.Errorf("unknown Report edge %s", name)
}

// ReportImageMutation represents an operation that mutates the ReportImage nodes in the graph.
type ReportImageMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	file_name     *string
	original_name *string
	orden         *int
	addorden      *int
	clearedFields map[string]struct{}
	report        *uuid.UUID
	clearedreport bool
	done          bool
	oldValue      func(context.Context) (*ReportImage, error)
	predicates    []predicate.ReportImage
}

var _ ent.Mutation = (*ReportImageMutation)(nil)

// reportimageOption allows management of the mutation configuration using functional options.
type reportimageOption func(*ReportImageMutation)

// newReportImageMutation creates new mutation for the ReportImage entity.
func newReportImageMutation(c config, op Op, opts ...reportimageOption) *ReportImageMutation {
	m := &ReportImageMutation{
		config:        c,
		op:            op,
		typ:           TypeReportImage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportImageID sets the ID field of the mutation.
func withReportImageID(id uuid.UUID) reportimageOption {
	return func(m *ReportImageMutation) {
		var (
			err   error
			once  sync.Once
			value *ReportImage
		)
		m.oldValue = func(ctx context.Context) (*ReportImage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReportImage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReportImage sets the old ReportImage of the mutation.
func withReportImage(node *ReportImage) reportimageOption {
	return func(m *ReportImageMutation) {
		m.oldValue = func(context.Context) (*ReportImage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportImageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportImageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReportImage entities.
func (m *ReportImageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportImageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportImageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReportImage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ReportImageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReportImageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReportImage entity.
// If the ReportImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportImageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReportImageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReportImageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReportImageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ReportImage entity.
// If the ReportImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportImageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReportImageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetReportID sets the "report_id" field.
func (m *ReportImageMutation) SetReportID(u uuid.UUID) {
	m.report = &u
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *ReportImageMutation) ReportID() (r uuid.UUID, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the ReportImage entity.
// If the ReportImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportImageMutation) OldReportID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *ReportImageMutation) ResetReportID() {
	m.report = nil
}

// SetFileName sets the "file_name" field.
func (m *ReportImageMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *ReportImageMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the ReportImage entity.
// If the ReportImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportImageMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *ReportImageMutation) ResetFileName() {
	m.file_name = nil
}

// SetOriginalName sets the "original_name" field.
func (m *ReportImageMutation) SetOriginalName(s string) {
	m.original_name = &s
}

// OriginalName returns the value of the "original_name" field in the mutation.
func (m *ReportImageMutation) OriginalName() (r string, exists bool) {
	v := m.original_name
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalName returns the old "original_name" field's value of the ReportImage entity.
// If the ReportImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportImageMutation) OldOriginalName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalName: %w", err)
	}
	return oldValue.OriginalName, nil
}

// ResetOriginalName resets all changes to the "original_name" field.
func (m *ReportImageMutation) ResetOriginalName() {
	m.original_name = nil
}

// SetOrden sets the "orden" field.
func (m *ReportImageMutation) SetOrden(i int) {
	m.orden = &i
	m.addorden = nil
}

// Orden returns the value of the "orden" field in the mutation.
func (m *ReportImageMutation) Orden() (r int, exists bool) {
	v := m.orden
	if v == nil {
		return
	}
	return *v, true
}

// OldOrden returns the old "orden" field's value of the ReportImage entity.
// If the ReportImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportImageMutation) OldOrden(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrden is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrden requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrden: %w", err)
	}
	return oldValue.Orden, nil
}

// AddOrden adds i to the "orden" field.
func (m *ReportImageMutation) AddOrden(i int) {
	if m.addorden != nil {
		*m.addorden += i
	} else {
		m.addorden = &i
	}
}

// AddedOrden returns the value that was added to the "orden" field in this mutation.
func (m *ReportImageMutation) AddedOrden() (r int, exists bool) {
	v := m.addorden
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrden resets all changes to the "orden" field.
func (m *ReportImageMutation) ResetOrden() {
	m.orden = nil
	m.addorden = nil
}

// ClearReport clears the "report" edge to the Report entity.
func (m *ReportImageMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[reportimage.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *ReportImageMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *ReportImageMutation) ReportIDs() (ids []uuid.UUID) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *ReportImageMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// Where appends a list predicates to the ReportImageMutation builder.
func (m *ReportImageMutation) Where(ps ...predicate.ReportImage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportImageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportImageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReportImage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportImageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportImageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReportImage).
func (m *ReportImageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportImageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, reportimage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, reportimage.FieldUpdatedAt)
	}
	if m.report != nil {
		fields = append(fields, reportimage.FieldReportID)
	}
	if m.file_name != nil {
		fields = append(fields, reportimage.FieldFileName)
	}
	if m.original_name != nil {
		fields = append(fields, reportimage.FieldOriginalName)
	}
	if m.orden != nil {
		fields = append(fields, reportimage.FieldOrden)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportImageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reportimage.FieldCreatedAt:
		return m.CreatedAt()
	case reportimage.FieldUpdatedAt:
		return m.UpdatedAt()
	case reportimage.FieldReportID:
		return m.ReportID()
	case reportimage.FieldFileName:
		return m.FileName()
	case reportimage.FieldOriginalName:
		return m.OriginalName()
	case reportimage.FieldOrden:
		return m.Orden()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportImageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reportimage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case reportimage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case reportimage.FieldReportID:
		return m.OldReportID(ctx)
	case reportimage.FieldFileName:
		return m.OldFileName(ctx)
	case reportimage.FieldOriginalName:
		return m.OldOriginalName(ctx)
	case reportimage.FieldOrden:
		return m.OldOrden(ctx)
	}
	return nil, fmt.Errorf("unknown ReportImage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportImageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reportimage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case reportimage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case reportimage.FieldReportID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case reportimage.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case reportimage.FieldOriginalName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalName(v)
		return nil
	case reportimage.FieldOrden:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrden(v)
		return nil
	}
	return fmt.Errorf("unknown ReportImage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportImageMutation) AddedFields() []string {
	var fields []string
	if m.addorden != nil {
		fields = append(fields, reportimage.FieldOrden)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportImageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reportimage.FieldOrden:
		return m.AddedOrden()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportImageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reportimage.FieldOrden:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrden(v)
		return nil
	}
	return fmt.Errorf("unknown ReportImage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportImageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportImageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportImageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReportImage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportImageMutation) ResetField(name string) error {
	switch name {
	case reportimage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case reportimage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case reportimage.FieldReportID:
		m.ResetReportID()
		return nil
	case reportimage.FieldFileName:
		m.ResetFileName()
		return nil
	case reportimage.FieldOriginalName:
		m.ResetOriginalName()
		return nil
	case reportimage.FieldOrden:
		m.ResetOrden()
		return nil
	}
	return fmt.Errorf("unknown ReportImage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportImageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.report != nil {
		edges = append(edges, reportimage.EdgeReport)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportImageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case reportimage.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportImageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportImageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportImageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreport {
		edges = append(edges, reportimage.EdgeReport)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportImageMutation) EdgeCleared(name string) bool {
	switch name {
	case reportimage.EdgeReport:
		return m.clearedreport
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportImageMutation) ClearEdge(name string) error {
	switch name {
	case reportimage.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown ReportImage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportImageMutation) ResetEdge(name string) error {
	switch name {
	case reportimage.EdgeReport:
		m.ResetReport()
		return nil
	}
	return fmt.Errorf("unknown ReportImage edge %s", name)
}

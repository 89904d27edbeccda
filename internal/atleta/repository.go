package atleta

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KromaEnergia/api-atletas/internal/paginacao"
	"github.com/KromaEnergia/api-atletas/internal/sqlerr"
	"gorm.io/gorm"
)

var ErrCPFDuplicado = errors.New("cpf já cadastrado")

// Filtro da busca. Campo vazio não filtra.
type Filtro struct {
	Nome string
	CPF  string
}

// Repository recebe em cada chamada a sessão da requisição.
type Repository interface {
	Criar(db *gorm.DB, a *Atleta) error
	ListarPaginado(db *gorm.DB, p paginacao.Paginacao) ([]Atleta, int64, error)
	Buscar(db *gorm.DB, f Filtro) ([]Atleta, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Criar insere o atleta num único comando. Não há consulta prévia pelo cpf:
// quem decide a duplicidade é a constraint do banco.
func (r *repositoryImpl) Criar(db *gorm.DB, a *Atleta) error {
	if err := db.Create(a).Error; err != nil {
		if sqlerr.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %w", ErrCPFDuplicado, err)
		}
		return fmt.Errorf("erro ao criar atleta: %w", err)
	}
	return nil
}

func (r *repositoryImpl) ListarPaginado(db *gorm.DB, p paginacao.Paginacao) ([]Atleta, int64, error) {
	var total int64
	if err := db.Model(&Atleta{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("erro ao contar atletas: %w", err)
	}

	var atletas []Atleta
	err := db.Order("id ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&atletas).Error
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar atletas: %w", err)
	}

	return atletas, total, nil
}

func (r *repositoryImpl) Buscar(db *gorm.DB, f Filtro) ([]Atleta, error) {
	query := db.Model(&Atleta{})

	if f.Nome != "" {
		// Os dois lados passam pelo LOWER do banco, senão a caixa de
		// letras fora do ASCII pode divergir.
		padrao := "%" + escaparLike(f.Nome) + "%"
		query = query.Where(`LOWER(nome) LIKE LOWER(?) ESCAPE '\'`, padrao)
	}
	if f.CPF != "" {
		query = query.Where("cpf = ?", f.CPF)
	}

	var atletas []Atleta
	if err := query.Order("id ASC").Find(&atletas).Error; err != nil {
		return nil, fmt.Errorf("erro ao buscar atletas: %w", err)
	}
	return atletas, nil
}

// escaparLike faz %, _ e \ digitados pelo cliente valerem como texto.
func escaparLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

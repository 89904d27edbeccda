package atleta

import "gorm.io/gorm"

// Atleta é a linha da tabela atletas. O id é atribuído pelo banco e nunca
// muda; a unicidade do cpf é garantida pela constraint atletas_cpf_key.
type Atleta struct {
	ID                uint    `gorm:"primaryKey;autoIncrement"`
	Nome              string  `gorm:"size:255;not null"`
	CPF               string  `gorm:"column:cpf;size:11;not null;uniqueIndex:atletas_cpf_key"`
	CentroTreinamento *string `gorm:"size:255"`
	Categoria         *string `gorm:"size:255"`
}

func (Atleta) TableName() string {
	return "atletas"
}

// Migrate cria a tabela e o índice único se ainda não existirem.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Atleta{})
}

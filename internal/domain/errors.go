package domain

import "errors"

var (
	// ErrInvalidParameter 表示调用方传入的参数不合法（非正数、超出范围等）
	ErrInvalidParameter = errors.New("参数不合法")
	// ErrShapeMismatch 表示排班矩阵的形状或团队标签无法被模拟器接受
	ErrShapeMismatch = errors.New("排班矩阵不合法")
)
